package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/Padala-Srishanth/placements/internal/auth"
	"github.com/Padala-Srishanth/placements/internal/cache"
	"github.com/Padala-Srishanth/placements/pkg/model"
	"github.com/Padala-Srishanth/placements/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlacementStore is the store contract the placement handlers depend on.
// The pgx repository satisfies it in production; tests pass fakes.
type PlacementStore interface {
	List(ctx context.Context, filter model.PlacementFilter, limit, offset int) ([]model.Placement, error)
	Get(ctx context.Context, id string) (*model.Placement, error)
	ListAll(ctx context.Context) ([]model.Placement, error)
	Create(ctx context.Context, p *model.Placement) error
	Update(ctx context.Context, p *model.Placement) error
	Delete(ctx context.Context, id string) error
}

// HigherEducationStore is the store contract the higher-education handlers
// depend on.
type HigherEducationStore interface {
	List(ctx context.Context, filter model.HigherEducationFilter, limit, offset int) ([]model.HigherEducation, error)
	Get(ctx context.Context, id string) (*model.HigherEducation, error)
	ListAll(ctx context.Context) ([]model.HigherEducation, error)
	Create(ctx context.Context, e *model.HigherEducation) error
	Update(ctx context.Context, e *model.HigherEducation) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	Logger          *zap.Logger
	Placements      PlacementStore
	HigherEducation HigherEducationStore
	Cache           *cache.Cache
	TokenMaker      *auth.JWTMaker
	AdminEmail      string
	TokenTTL        time.Duration
	Dev             bool
	StorePing       func(ctx context.Context) error
}

const (
	defaultLimit = 50

	placementOptionsKey       = "filter-options:placements"
	higherEducationOptionsKey = "filter-options:higher-education"
)

// serverError logs the underlying failure and sends a generic 500. The
// detail reaches the body only in development.
func (h *Handler) serverError(c *gin.Context, message string, err error) {
	h.Logger.Sugar().Errorw(message, "path", c.Request.URL.Path, "err", err)
	details := ""
	if h.Dev && err != nil {
		details = err.Error()
	}
	response.Internal(c, message, details)
}

// listParams reads limit/offset with their defaults. Non-numeric or
// negative values are a client error rather than silent NaN propagation.
func listParams(c *gin.Context) (limit, offset int, ok bool) {
	limit, ok = intParam(c, "limit", defaultLimit)
	if !ok {
		return 0, 0, false
	}
	offset, ok = intParam(c, "offset", 0)
	if !ok {
		return 0, 0, false
	}
	return limit, offset, true
}

func intParam(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		response.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return v, true
}
