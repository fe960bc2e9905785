package certifications

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

const maxUploadSize = 25 << 20 // 25MB, PDF certificates included

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
	rg.GET("/certifications", h.list)
	rg.GET("/certifications/:id", h.get)
}

// RegisterAdminRoutes attaches mutating routes. Static sub-paths are
// registered before the parameterized routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/certifications", h.create)
	rg.PUT("/certifications/reorder", h.reorder)
	rg.PUT("/certifications/:id", h.update)
	rg.DELETE("/certifications/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []Certification{}
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	cert, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, cert)
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	in, fe := bindInput(c)
	if err := fe.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	certificate, closeCert, err := form.File(c, "certificate")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read certificate", nil)
		return
	}
	defer closeCert()
	image, closeImage, err := form.File(c, "image")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read image", nil)
		return
	}
	defer closeImage()

	cert, err := h.Svc.Create(c.Request.Context(), in, certificate, image)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Created(c, cert)
}

func (h *Handler) update(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	upd, fe := bindUpdate(c)
	if err := fe.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	certificate, closeCert, err := form.File(c, "certificate")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read certificate", nil)
		return
	}
	defer closeCert()
	image, closeImage, err := form.File(c, "image")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read image", nil)
		return
	}
	defer closeImage()

	cert, err := h.Svc.Update(c.Request.Context(), c.Param("id"), upd, certificate, image)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, cert)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "certification deleted"})
}

func (h *Handler) reorder(c *gin.Context) {
	var pairs []OrderPair
	if err := c.ShouldBindJSON(&pairs); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid reorder payload", nil)
		return
	}
	failed := h.Svc.Reorder(c.Request.Context(), pairs)
	respond.OK(c, gin.H{"applied": len(pairs) - len(failed), "failed": failed})
}

func bindInput(c *gin.Context) (CreateInput, validate.FieldErrors) {
	fe := validate.FieldErrors{}
	var in CreateInput
	in.Title, _ = form.Value(c, "title")
	in.Organization, _ = form.Value(c, "organization")
	in.CredentialID, _ = form.Value(c, "credentialId")
	in.CredentialURL, _ = form.Value(c, "credentialUrl")
	in.ReusedImageURL, _ = form.Value(c, "reusedImageUrl")
	bindIntField(c, fe, "issueMonth", func(v int) { in.IssueMonth = v })
	bindIntField(c, fe, "issueYear", func(v int) { in.IssueYear = v })
	bindIntField(c, fe, "order", func(v int) { in.Order = v })
	return in, fe
}

func bindUpdate(c *gin.Context) (Update, validate.FieldErrors) {
	fe := validate.FieldErrors{}
	var upd Update
	if v, ok := form.Value(c, "title"); ok {
		upd.Title = &v
	}
	if v, ok := form.Value(c, "organization"); ok {
		upd.Organization = &v
	}
	if v, ok := form.Value(c, "credentialId"); ok {
		upd.CredentialID = &v
	}
	if v, ok := form.Value(c, "credentialUrl"); ok {
		upd.CredentialURL = &v
	}
	if v, ok := form.Value(c, "reusedImageUrl"); ok {
		upd.ReusedImageURL = &v
	}
	bindIntField(c, fe, "issueMonth", func(v int) { upd.IssueMonth = &v })
	bindIntField(c, fe, "issueYear", func(v int) { upd.IssueYear = &v })
	bindIntField(c, fe, "order", func(v int) { upd.Order = &v })
	return upd, fe
}

func bindIntField(c *gin.Context, fe validate.FieldErrors, field string, set func(int)) {
	if v, ok, err := form.Int(c, field); ok {
		if err != nil {
			fe.Add(field, err.Error())
		} else {
			set(v)
		}
	}
}

func writeError(c *gin.Context, err error) {
	var fe validate.FieldErrors
	switch {
	case errors.As(err, &fe):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input", fe)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", ErrNotFound.Error(), nil)
	case errors.Is(err, doccheck.ErrNotPDF):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input",
			validate.FieldErrors{"certificate": doccheck.ErrNotPDF.Error()})
	case errors.Is(err, media.ErrUpstream):
		respond.Error(c, http.StatusBadGateway, "media_error", "media store operation failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
