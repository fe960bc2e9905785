package education

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/form"
	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

const maxUploadSize = 10 << 20 // 10MB

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
	rg.GET("/education", h.list)
	rg.GET("/education/:id", h.get)
}

// RegisterAdminRoutes attaches mutating routes. Static sub-paths are
// registered before the parameterized routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/education", h.create)
	rg.PUT("/education/reorder", h.reorder)
	rg.PUT("/education/:id", h.update)
	rg.DELETE("/education/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []Education{}
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	e, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, e)
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	in, fe := bindInput(c)
	if err := fe.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	logo, closeFile, err := form.File(c, "logo")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read logo", nil)
		return
	}
	defer closeFile()

	e, err := h.Svc.Create(c.Request.Context(), in, logo)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Created(c, e)
}

func (h *Handler) update(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	upd, fe := bindUpdate(c)
	if err := fe.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	logo, closeFile, err := form.File(c, "logo")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read logo", nil)
		return
	}
	defer closeFile()

	e, err := h.Svc.Update(c.Request.Context(), c.Param("id"), upd, logo)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, e)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "education entry deleted"})
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
	in.Institution, _ = form.Value(c, "institution")
	in.Degree, _ = form.Value(c, "degree")
	in.FieldOfStudy, _ = form.Value(c, "fieldOfStudy")
	in.Grade, _ = form.Value(c, "grade")
	in.Description, _ = form.Value(c, "description")
	in.Status, _ = form.Value(c, "status")
	bindIntField(c, fe, "startYear", func(v int) { in.StartYear = v })
	bindIntField(c, fe, "completionYear", func(v int) { in.CompletionYear = &v })
	bindIntField(c, fe, "order", func(v int) { in.Order = v })
	return in, fe
}

func bindUpdate(c *gin.Context) (Update, validate.FieldErrors) {
	fe := validate.FieldErrors{}
	var upd Update
	if v, ok := form.Value(c, "institution"); ok {
		upd.Institution = &v
	}
	if v, ok := form.Value(c, "degree"); ok {
		upd.Degree = &v
	}
	if v, ok := form.Value(c, "fieldOfStudy"); ok {
		upd.FieldOfStudy = &v
	}
	if v, ok := form.Value(c, "grade"); ok {
		upd.Grade = &v
	}
	if v, ok := form.Value(c, "description"); ok {
		upd.Description = &v
	}
	if v, ok := form.Value(c, "status"); ok {
		upd.Status = &v
	}
	bindIntField(c, fe, "startYear", func(v int) { upd.StartYear = &v })
	bindIntField(c, fe, "completionYear", func(v int) { upd.CompletionYear = &v })
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
	case errors.Is(err, media.ErrUpstream):
		respond.Error(c, http.StatusBadGateway, "media_error", "media store operation failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
