package handler

import (
	"errors"
	"net/http"

	"github.com/Padala-Srishanth/placements/pkg/model"
	"github.com/Padala-Srishanth/placements/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListHigherEducation(c *gin.Context) {
	limit, offset, ok := listParams(c)
	if !ok {
		return
	}
	year, ok := intParam(c, "year", 0)
	if !ok {
		return
	}

	filter := model.HigherEducationFilter{
		Country:    c.Query("country"),
		University: c.Query("university"),
		Course:     c.Query("course"),
		Year:       year,
	}

	experiences, err := h.HigherEducation.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		h.serverError(c, "Failed to fetch higher education experiences", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"experiences": experiences,
		"total":       len(experiences),
		"hasMore":     len(experiences) == limit,
	})
}

func (h *Handler) GetHigherEducation(c *gin.Context) {
	experience, err := h.HigherEducation.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			response.NotFound(c, "Higher education experience not found")
			return
		}
		h.serverError(c, "Failed to fetch higher education experience", err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (h *Handler) HigherEducationFilterOptions(c *gin.Context) {
	ctx := c.Request.Context()

	var opts model.HigherEducationOptions
	if h.Cache.GetJSON(ctx, higherEducationOptionsKey, &opts) {
		c.JSON(http.StatusOK, opts)
		return
	}

	experiences, err := h.HigherEducation.ListAll(ctx)
	if err != nil {
		h.serverError(c, "Failed to fetch filter options", err)
		return
	}

	opts = model.ExtractHigherEducationOptions(experiences)
	h.Cache.SetJSON(ctx, higherEducationOptionsKey, opts)
	c.JSON(http.StatusOK, opts)
}
