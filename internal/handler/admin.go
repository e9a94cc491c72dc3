package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Padala-Srishanth/placements/pkg/model"
	"github.com/Padala-Srishanth/placements/pkg/response"
	"github.com/gin-gonic/gin"
)

// AdminLogin checks the supplied email against the configured admin
// address and hands back a signed token. The password is not verified
// here; the real credential check happens with the identity provider on
// the client.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Email != h.AdminEmail {
		response.Unauthorized(c, "Invalid admin credentials")
		return
	}

	token, err := h.TokenMaker.CreateToken(req.Email, h.TokenTTL)
	if err != nil {
		h.serverError(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin login successful",
		"token":   token,
	})
}

func (h *Handler) CreatePlacement(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	placement := model.NewPlacement(raw)
	now := time.Now().UTC()
	placement.CreatedAt = now
	placement.UpdatedAt = now

	if errs := placement.Validate(); len(errs) > 0 {
		response.ValidationErrors(c, errs)
		return
	}

	if err := h.Placements.Create(c.Request.Context(), placement); err != nil {
		h.serverError(c, "Failed to create placement", err)
		return
	}

	h.Cache.Invalidate(c.Request.Context(), placementOptionsKey)
	response.Created(c, placement)
}

func (h *Handler) UpdatePlacement(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	placement := model.NewPlacement(raw)
	placement.ID = c.Param("id")
	placement.UpdatedAt = time.Now().UTC()

	if errs := placement.Validate(); len(errs) > 0 {
		response.ValidationErrors(c, errs)
		return
	}

	if err := h.Placements.Update(c.Request.Context(), placement); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			response.NotFound(c, "Placement not found")
			return
		}
		h.serverError(c, "Failed to update placement", err)
		return
	}

	h.Cache.Invalidate(c.Request.Context(), placementOptionsKey)
	c.JSON(http.StatusOK, placement)
}

// DeletePlacement hard-deletes. Deleting an id that never existed reports
// success: the post-state is identical either way.
func (h *Handler) DeletePlacement(c *gin.Context) {
	if err := h.Placements.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.serverError(c, "Failed to delete placement", err)
		return
	}

	h.Cache.Invalidate(c.Request.Context(), placementOptionsKey)
	response.Message(c, "Placement deleted successfully")
}

func (h *Handler) CreateHigherEducation(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	experience := model.NewHigherEducation(raw)
	now := time.Now().UTC()
	experience.CreatedAt = now
	experience.UpdatedAt = now

	if errs := experience.Validate(); len(errs) > 0 {
		response.ValidationErrors(c, errs)
		return
	}

	if err := h.HigherEducation.Create(c.Request.Context(), experience); err != nil {
		h.serverError(c, "Failed to create higher education experience", err)
		return
	}

	h.Cache.Invalidate(c.Request.Context(), higherEducationOptionsKey)
	response.Created(c, experience)
}

func (h *Handler) UpdateHigherEducation(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	experience := model.NewHigherEducation(raw)
	experience.ID = c.Param("id")
	experience.UpdatedAt = time.Now().UTC()

	if errs := experience.Validate(); len(errs) > 0 {
		response.ValidationErrors(c, errs)
		return
	}

	if err := h.HigherEducation.Update(c.Request.Context(), experience); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			response.NotFound(c, "Higher education experience not found")
			return
		}
		h.serverError(c, "Failed to update higher education experience", err)
		return
	}

	h.Cache.Invalidate(c.Request.Context(), higherEducationOptionsKey)
	c.JSON(http.StatusOK, experience)
}

func (h *Handler) DeleteHigherEducation(c *gin.Context) {
	if err := h.HigherEducation.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.serverError(c, "Failed to delete higher education experience", err)
		return
	}

	h.Cache.Invalidate(c.Request.Context(), higherEducationOptionsKey)
	response.Message(c, "Higher education experience deleted successfully")
}
