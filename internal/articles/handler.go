package articles

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
	rg.GET("/articles", h.list)
	rg.GET("/articles/:id", h.get)
}

// RegisterAdminRoutes attaches mutating routes. Static sub-paths are
// registered before the parameterized routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/articles", h.create)
	rg.PUT("/articles/reorder", h.reorder)
	rg.PUT("/articles/:id", h.update)
	rg.PUT("/articles/:id/toggle-status", h.toggleStatus)
	rg.PUT("/articles/:id/toggle-pinned", h.togglePinned)
	rg.DELETE("/articles/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	f := Filter{Status: c.Query("status")}
	if f.Status != "" && f.Status != StatusDraft && f.Status != StatusPublished {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input",
			validate.FieldErrors{"status": "must be draft or published"})
		return
	}

	out, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []Article{}
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

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	in, fe := bindInput(c)
	if err := fe.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	cover, closeFile, err := form.File(c, "cover")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read cover", nil)
		return
	}
	defer closeFile()

	a, err := h.Svc.Create(c.Request.Context(), in, cover)
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

	cover, closeFile, err := form.File(c, "cover")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read cover", nil)
		return
	}
	defer closeFile()

	a, err := h.Svc.Update(c.Request.Context(), c.Param("id"), upd, cover)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, a)
}

func (h *Handler) toggleStatus(c *gin.Context) {
	a, err := h.Svc.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, a)
}

func (h *Handler) togglePinned(c *gin.Context) {
	a, err := h.Svc.TogglePinned(c.Request.Context(), c.Param("id"))
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
	respond.OK(c, gin.H{"message": "article deleted"})
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
	in.Summary, _ = form.Value(c, "summary")
	in.Content, _ = form.Value(c, "content")
	in.Status, _ = form.Value(c, "status")
	in.ExternalURL, _ = form.Value(c, "externalUrl")
	if list, ok := form.List(c, "tags"); ok {
		in.Tags = list
	}
	if v, ok, err := form.Bool(c, "pinned"); ok {
		if err != nil {
			fe.Add("pinned", err.Error())
		} else {
			in.Pinned = v
		}
	}
	if v, ok, err := form.Int(c, "order"); ok {
		if err != nil {
			fe.Add("order", err.Error())
		} else {
			in.Order = v
		}
	}
	return in, fe
}

func bindUpdate(c *gin.Context) (Update, validate.FieldErrors) {
	fe := validate.FieldErrors{}
	var upd Update
	if v, ok := form.Value(c, "title"); ok {
		upd.Title = &v
	}
	if v, ok := form.Value(c, "summary"); ok {
		upd.Summary = &v
	}
	if v, ok := form.Value(c, "content"); ok {
		upd.Content = &v
	}
	if v, ok := form.Value(c, "status"); ok {
		upd.Status = &v
	}
	if v, ok := form.Value(c, "externalUrl"); ok {
		upd.ExternalURL = &v
	}
	if list, ok := form.List(c, "tags"); ok {
		upd.Tags = &list
	}
	if v, ok, err := form.Bool(c, "pinned"); ok {
		if err != nil {
			fe.Add("pinned", err.Error())
		} else {
			upd.Pinned = &v
		}
	}
	if v, ok, err := form.Int(c, "order"); ok {
		if err != nil {
			fe.Add("order", err.Error())
		} else {
			upd.Order = &v
		}
	}
	return upd, fe
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
