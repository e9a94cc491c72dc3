package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Helpers keeping every handler on the same body shapes: {"error": ...}
// for single failures, {"errors": [...]} for validation, {"message": ...}
// for bare acknowledgements.

// Error sends a failure body with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ValidationErrors sends a 400 carrying every violated rule at once so the
// client can display all problems together.
func ValidationErrors(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(c, http.StatusNotFound, message)
}

// Internal sends a 500 response. Store and infrastructure detail stays out
// of the body unless details is non-empty (development mode only).
func Internal(c *gin.Context, message, details string) {
	body := gin.H{"error": message}
	if details != "" {
		body["details"] = details
	}
	c.JSON(http.StatusInternalServerError, body)
}

// Message sends a 200 acknowledgement.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Created sends a 201 with the created entity.
func Created(c *gin.Context, entity any) {
	c.JSON(http.StatusCreated, entity)
}
