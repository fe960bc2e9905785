package awards

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
	rg.GET("/awards", h.list)
	rg.GET("/awards/:id", h.get)
}

// RegisterAdminRoutes attaches mutating routes plus the association picker.
// Static sub-paths are registered before the parameterized routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/awards/data/associations", h.associations)
	rg.POST("/awards", h.create)
	rg.PUT("/awards/reorder", h.reorder)
	rg.PUT("/awards/:id", h.update)
	rg.DELETE("/awards/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []Award{}
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, a)
}

func (h *Handler) associations(c *gin.Context) {
	out, err := h.Svc.ListAssociations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	in, fe := bindInput(c)
	if err := fe.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	image, closeFile, err := form.File(c, "image")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read image", nil)
		return
	}
	defer closeFile()

	a, err := h.Svc.Create(c.Request.Context(), in, image)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Created(c, a)
}

func (h *Handler) update(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	upd, fe := bindUpdate(c)
	if err := fe.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	image, closeFile, err := form.File(c, "image")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read image", nil)
		return
	}
	defer closeFile()

	a, err := h.Svc.Update(c.Request.Context(), c.Param("id"), upd, image)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, a)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "award deleted"})
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
	in.Issuer, _ = form.Value(c, "issuer")
	in.Description, _ = form.Value(c, "description")
	in.AssociatedType, _ = form.Value(c, "associatedType")
	in.AssociatedID, _ = form.Value(c, "associatedId")
	bindIntField(c, fe, "year", func(v int) { in.Year = v })
	bindIntField(c, fe, "order", func(v int) { in.Order = v })
	return in, fe
}

func bindUpdate(c *gin.Context) (Update, validate.FieldErrors) {
	fe := validate.FieldErrors{}
	var upd Update
	if v, ok := form.Value(c, "title"); ok {
		upd.Title = &v
	}
	if v, ok := form.Value(c, "issuer"); ok {
		upd.Issuer = &v
	}
	if v, ok := form.Value(c, "description"); ok {
		upd.Description = &v
	}
	if v, ok := form.Value(c, "associatedType"); ok {
		upd.AssociatedType = &v
	}
	if v, ok := form.Value(c, "associatedId"); ok {
		upd.AssociatedID = &v
	}
	bindIntField(c, fe, "year", func(v int) { upd.Year = &v })
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
