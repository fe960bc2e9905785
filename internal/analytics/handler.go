package analytics

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/validate"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches the tracking call and the public aggregate.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/analytics/track", h.track)
	rg.GET("/analytics/stats", h.stats)
}

// RegisterAdminRoutes attaches the detailed breakdown.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/detailed", h.detailed)
}

func (h *Handler) track(c *gin.Context) {
	var in TrackInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if in.UserAgent == "" {
		in.UserAgent = c.Request.UserAgent()
	}

	e, err := h.Svc.Track(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Created(c, e)
}

func (h *Handler) stats(c *gin.Context) {
	out, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) detailed(c *gin.Context) {
	out, err := h.Svc.Detailed(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, out)
}

func writeError(c *gin.Context, err error) {
	var fe validate.FieldErrors
	if errors.As(err, &fe) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input", fe)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
}
