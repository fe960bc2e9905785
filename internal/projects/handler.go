package projects

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
	rg.GET("/projects", h.list)
	rg.GET("/projects/:id", h.get)
}

// RegisterAdminRoutes attaches mutating routes. Static sub-paths are
// registered before the parameterized routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects", h.create)
	rg.PUT("/projects/reorder", h.reorder)
	rg.PUT("/projects/:id", h.update)
	rg.PUT("/projects/:id/toggle-home", h.toggleHome)
	rg.PUT("/projects/:id/toggle-featured", h.toggleFeatured)
	rg.DELETE("/projects/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	var f Filter
	if v, ok := parseBoolQuery(c, "featured"); ok {
		f.Featured = &v
	}
	if v, ok := parseBoolQuery(c, "showOnHome"); ok {
		f.ShowOnHome = &v
	}

	out, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []Project{}
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, p)
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

	p, err := h.Svc.Create(c.Request.Context(), in, image)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Created(c, p)
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

	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), upd, image)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, p)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "project deleted"})
}

func (h *Handler) toggleHome(c *gin.Context) {
	value, err := h.Svc.ToggleShowOnHome(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"showOnHome": value})
}

func (h *Handler) toggleFeatured(c *gin.Context) {
	value, err := h.Svc.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"featured": value})
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
	in.Description, _ = form.Value(c, "description")
	in.LiveURL, _ = form.Value(c, "liveUrl")
	in.RepoURL, _ = form.Value(c, "repoUrl")
	if list, ok := form.List(c, "technologies"); ok {
		in.Technologies = list
	}
	if v, ok, err := form.Bool(c, "featured"); ok {
		if err != nil {
			fe.Add("featured", err.Error())
		} else {
			in.Featured = v
		}
	}
	if v, ok, err := form.Bool(c, "showOnHome"); ok {
		if err != nil {
			fe.Add("showOnHome", err.Error())
		} else {
			in.ShowOnHome = v
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
	if v, ok := form.Value(c, "description"); ok {
		upd.Description = &v
	}
	if v, ok := form.Value(c, "liveUrl"); ok {
		upd.LiveURL = &v
	}
	if v, ok := form.Value(c, "repoUrl"); ok {
		upd.RepoURL = &v
	}
	if list, ok := form.List(c, "technologies"); ok {
		upd.Technologies = &list
	}
	if v, ok, err := form.Bool(c, "featured"); ok {
		if err != nil {
			fe.Add("featured", err.Error())
		} else {
			upd.Featured = &v
		}
	}
	if v, ok, err := form.Bool(c, "showOnHome"); ok {
		if err != nil {
			fe.Add("showOnHome", err.Error())
		} else {
			upd.ShowOnHome = &v
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

func parseBoolQuery(c *gin.Context, name string) (bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return false, false
	}
	return raw == "true" || raw == "1", true
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
