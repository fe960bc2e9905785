package feedback

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/form"
	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

const maxUploadSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches the submission route and the approved-only
// testimonial listing.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", h.submit)
	rg.GET("/feedback/testimonials", h.testimonials)
}

// RegisterAdminRoutes attaches moderation routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/feedback", h.list)
	rg.PUT("/feedback/:id/toggle-approved", h.toggleApproved)
	rg.PUT("/feedback/:id", h.update)
	rg.DELETE("/feedback/:id", h.delete)
}

func (h *Handler) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fe := validate.FieldErrors{}
	var in SubmitInput
	in.Name, _ = form.Value(c, "name")
	in.Email, _ = form.Value(c, "email")
	in.Role, _ = form.Value(c, "role")
	in.Company, _ = form.Value(c, "company")
	in.Message, _ = form.Value(c, "message")
	if v, ok, err := form.Int(c, "rating"); ok {
		if err != nil {
			fe.Add("rating", err.Error())
		} else {
			in.Rating = v
		}
	}
	if err := fe.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	avatar, closeFile, err := form.File(c, "avatar")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read avatar", nil)
		return
	}
	defer closeFile()

	fb, err := h.Svc.Submit(c.Request.Context(), in, avatar)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Created(c, fb)
}

func (h *Handler) testimonials(c *gin.Context) {
	out, err := h.Svc.Testimonials(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []Feedback{}
	}
	respond.OK(c, out)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []Feedback{}
	}
	respond.OK(c, out)
}

func (h *Handler) update(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fe := validate.FieldErrors{}
	var upd Update
	if v, ok := form.Value(c, "name"); ok {
		upd.Name = &v
	}
	if v, ok := form.Value(c, "email"); ok {
		upd.Email = &v
	}
	if v, ok := form.Value(c, "role"); ok {
		upd.Role = &v
	}
	if v, ok := form.Value(c, "company"); ok {
		upd.Company = &v
	}
	if v, ok := form.Value(c, "message"); ok {
		upd.Message = &v
	}
	if v, ok, err := form.Int(c, "rating"); ok {
		if err != nil {
			fe.Add("rating", err.Error())
		} else {
			upd.Rating = &v
		}
	}
	if err := fe.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	avatar, closeFile, err := form.File(c, "avatar")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read avatar", nil)
		return
	}
	defer closeFile()

	fb, err := h.Svc.Update(c.Request.Context(), c.Param("id"), upd, avatar)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, fb)
}

func (h *Handler) toggleApproved(c *gin.Context) {
	fb, err := h.Svc.ToggleApproved(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, fb)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "feedback deleted"})
}

func writeError(c *gin.Context, err error) {
	var fe validate.FieldErrors
	switch {
	case errors.As(err, &fe):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input", fe)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", ErrNotFound.Error(), nil)
	case errors.Is(err, media.ErrUpstream):
		respond.Error(c, http.StatusBadGateway, "media_error", "media store operation failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
