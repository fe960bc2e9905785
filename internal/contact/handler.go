package contact

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

// RegisterPublicRoutes attaches the public submission route.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact-messages", h.submit)
}

// RegisterAdminRoutes attaches inbox management routes. The static admin
// listing path is registered before the parameterized ones.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/contact-messages/admin", h.inbox)
	rg.PUT("/contact-messages/:id/read", h.markRead)
	rg.DELETE("/contact-messages/:id", h.delete)
}

func (h *Handler) submit(c *gin.Context) {
	var in SubmitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	m, err := h.Svc.Submit(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Created(c, m)
}

func (h *Handler) inbox(c *gin.Context) {
	out, err := h.Svc.Inbox(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) markRead(c *gin.Context) {
	m, err := h.Svc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "contact message deleted"})
}

func writeError(c *gin.Context, err error) {
	var fe validate.FieldErrors
	switch {
	case errors.As(err, &fe):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input", fe)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", ErrNotFound.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
