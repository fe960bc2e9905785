package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/doccheck"
	"portfolio-backend/internal/shared/server/form"
	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

const maxUploadSize = 25 << 20 // 25MB, resumes included

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches read routes.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
}

// RegisterAdminRoutes attaches mutating routes. Each asset slot gets its own
// upload and remove endpoint.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/profile/about", h.update)
	rg.POST("/profile/upload-image", h.uploadAsset(SlotImage))
	rg.POST("/profile/upload-resume", h.uploadAsset(SlotResume))
	rg.POST("/profile/upload-about-image", h.uploadAsset(SlotAboutImage))
	rg.POST("/profile/upload-logo", h.uploadAsset(SlotLogo))
	rg.DELETE("/profile/image", h.removeAsset(SlotImage))
	rg.DELETE("/profile/resume", h.removeAsset(SlotResume))
	rg.DELETE("/profile/about-image", h.removeAsset(SlotAboutImage))
	rg.DELETE("/profile/logo", h.removeAsset(SlotLogo))
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.Svc.GetOrCreate(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, p)
}

func (h *Handler) update(c *gin.Context) {
	var upd Update
	if v, ok := form.Value(c, "fullName"); ok {
		upd.FullName = &v
	}
	if v, ok := form.Value(c, "title"); ok {
		upd.Title = &v
	}
	if v, ok := form.Value(c, "tagline"); ok {
		upd.Tagline = &v
	}
	if v, ok := form.Value(c, "bio"); ok {
		upd.Bio = &v
	}
	if v, ok := form.Value(c, "email"); ok {
		upd.Email = &v
	}
	if v, ok := form.Value(c, "phone"); ok {
		upd.Phone = &v
	}
	if v, ok := form.Value(c, "location"); ok {
		upd.Location = &v
	}
	if v, ok := form.Value(c, "githubUrl"); ok {
		upd.GithubURL = &v
	}
	if v, ok := form.Value(c, "linkedinUrl"); ok {
		upd.LinkedinURL = &v
	}
	if v, ok := form.Value(c, "twitterUrl"); ok {
		upd.TwitterURL = &v
	}

	p, err := h.Svc.Update(c.Request.Context(), upd)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, p)
}

func (h *Handler) uploadAsset(slot AssetSlot) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

		file, closeFile, err := form.File(c, "file")
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
			return
		}
		defer closeFile()
		if file == nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input",
				validate.FieldErrors{"file": "is required"})
			return
		}

		p, err := h.Svc.UploadAsset(c.Request.Context(), slot, file)
		if err != nil {
			writeError(c, err)
			return
		}
		respond.OK(c, p)
	}
}

func (h *Handler) removeAsset(slot AssetSlot) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := h.Svc.RemoveAsset(c.Request.Context(), slot)
		if err != nil {
			writeError(c, err)
			return
		}
		respond.OK(c, p)
	}
}

func writeError(c *gin.Context, err error) {
	var fe validate.FieldErrors
	switch {
	case errors.As(err, &fe):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input", fe)
	case errors.Is(err, ErrUnknownSlot):
		respond.Error(c, http.StatusNotFound, "not_found", ErrUnknownSlot.Error(), nil)
	case errors.Is(err, doccheck.ErrNotPDF):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input",
			validate.FieldErrors{"file": doccheck.ErrNotPDF.Error()})
	case errors.Is(err, media.ErrUpstream):
		respond.Error(c, http.StatusBadGateway, "media_error", "media store operation failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
