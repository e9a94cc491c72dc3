package handler

import (
	"errors"
	"net/http"

	"github.com/Padala-Srishanth/placements/pkg/model"
	"github.com/Padala-Srishanth/placements/pkg/response"
	"github.com/gin-gonic/gin"
)

// ListPlacements serves the filtered, paginated listing. hasMore is the
// page-full heuristic: a full page assumes more exists without probing
// beyond it, so it over-reports when the collection size is an exact
// multiple of the limit.
func (h *Handler) ListPlacements(c *gin.Context) {
	limit, offset, ok := listParams(c)
	if !ok {
		return
	}
	year, ok := intParam(c, "year", 0)
	if !ok {
		return
	}

	filter := model.PlacementFilter{
		Company:    c.Query("company"),
		Role:       c.Query("role"),
		Difficulty: c.Query("difficulty"),
		Year:       year,
	}

	placements, err := h.Placements.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		h.serverError(c, "Failed to fetch placements", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"placements": placements,
		"total":      len(placements),
		"hasMore":    len(placements) == limit,
	})
}

func (h *Handler) GetPlacement(c *gin.Context) {
	placement, err := h.Placements.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			response.NotFound(c, "Placement not found")
			return
		}
		h.serverError(c, "Failed to fetch placement", err)
		return
	}
	c.JSON(http.StatusOK, placement)
}

// PlacementFilterOptions serves the distinct dropdown values, from cache
// when redis is wired, from a full collection scan otherwise.
func (h *Handler) PlacementFilterOptions(c *gin.Context) {
	ctx := c.Request.Context()

	var opts model.PlacementOptions
	if h.Cache.GetJSON(ctx, placementOptionsKey, &opts) {
		c.JSON(http.StatusOK, opts)
		return
	}

	placements, err := h.Placements.ListAll(ctx)
	if err != nil {
		h.serverError(c, "Failed to fetch filter options", err)
		return
	}

	opts = model.ExtractPlacementOptions(placements)
	h.Cache.SetJSON(ctx, placementOptionsKey, opts)
	c.JSON(http.StatusOK, opts)
}
