package skills

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

// RegisterPublicRoutes attaches read routes. Static sub-paths come before the
// parameterized ones so "categories" is never captured as a skill id.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/skills", h.listGrouped)
	rg.GET("/skills/categories", h.listCategories)
	rg.GET("/skills/category/:categoryId", h.listByCategory)
	rg.GET("/skills/:id", h.getSkill)
}

// RegisterAdminRoutes attaches mutating routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/skills/categories", h.createCategory)
	rg.PUT("/skills/categories/reorder", h.reorderCategories)
	rg.PUT("/skills/categories/:id", h.updateCategory)
	rg.DELETE("/skills/categories/:id", h.deleteCategory)

	rg.POST("/skills", h.createSkill)
	rg.PUT("/skills/reorder", h.reorderSkills)
	rg.PUT("/skills/:id", h.updateSkill)
	rg.DELETE("/skills/:id", h.deleteSkill)
}

func (h *Handler) listGrouped(c *gin.Context) {
	out, err := h.Svc.ListGrouped(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) listCategories(c *gin.Context) {
	out, err := h.Svc.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []Category{}
	}
	respond.OK(c, out)
}

func (h *Handler) listByCategory(c *gin.Context) {
	out, err := h.Svc.ListByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []Skill{}
	}
	respond.OK(c, out)
}

func (h *Handler) getSkill(c *gin.Context) {
	sk, err := h.Svc.GetSkill(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, sk)
}

type categoryRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func (h *Handler) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	cat, err := h.Svc.CreateCategory(c.Request.Context(), req.Name, req.Order)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Created(c, cat)
}

type categoryUpdateRequest struct {
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

func (h *Handler) updateCategory(c *gin.Context) {
	var req categoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	cat, err := h.Svc.UpdateCategory(c.Request.Context(), c.Param("id"), CategoryUpdate{
		Name:  req.Name,
		Order: req.Order,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, cat)
}

func (h *Handler) deleteCategory(c *gin.Context) {
	if err := h.Svc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "category deleted"})
}

func (h *Handler) createSkill(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fe := validate.FieldErrors{}
	var in SkillInput
	in.Name, _ = form.Value(c, "name")
	in.CategoryID, _ = form.Value(c, "categoryId")
	if v, ok, err := form.Int(c, "level"); ok {
		if err != nil {
			fe.Add("level", err.Error())
		} else {
			in.Level = v
		}
	}
	if v, ok, err := form.Int(c, "order"); ok {
		if err != nil {
			fe.Add("order", err.Error())
		} else {
			in.Order = v
		}
	}
	if err := fe.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	icon, closeFile, err := form.File(c, "icon")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read icon", nil)
		return
	}
	defer closeFile()

	sk, err := h.Svc.CreateSkill(c.Request.Context(), in, icon)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Created(c, sk)
}

func (h *Handler) updateSkill(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fe := validate.FieldErrors{}
	var upd SkillUpdate
	if v, ok := form.Value(c, "name"); ok {
		upd.Name = &v
	}
	if v, ok := form.Value(c, "categoryId"); ok {
		upd.CategoryID = &v
	}
	if v, ok, err := form.Int(c, "level"); ok {
		if err != nil {
			fe.Add("level", err.Error())
		} else {
			upd.Level = &v
		}
	}
	if v, ok, err := form.Int(c, "order"); ok {
		if err != nil {
			fe.Add("order", err.Error())
		} else {
			upd.Order = &v
		}
	}
	if err := fe.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	icon, closeFile, err := form.File(c, "icon")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read icon", nil)
		return
	}
	defer closeFile()

	sk, err := h.Svc.UpdateSkill(c.Request.Context(), c.Param("id"), upd, icon)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, sk)
}

func (h *Handler) deleteSkill(c *gin.Context) {
	if err := h.Svc.DeleteSkill(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "skill deleted"})
}

func (h *Handler) reorderSkills(c *gin.Context) {
	var pairs []OrderPair
	if err := c.ShouldBindJSON(&pairs); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid reorder payload", nil)
		return
	}
	failed := h.Svc.ReorderSkills(c.Request.Context(), pairs)
	respond.OK(c, gin.H{"applied": len(pairs) - len(failed), "failed": failed})
}

func (h *Handler) reorderCategories(c *gin.Context) {
	var pairs []OrderPair
	if err := c.ShouldBindJSON(&pairs); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid reorder payload", nil)
		return
	}
	failed := h.Svc.ReorderCategories(c.Request.Context(), pairs)
	respond.OK(c, gin.H{"applied": len(pairs) - len(failed), "failed": failed})
}

func writeError(c *gin.Context, err error) {
	var fe validate.FieldErrors
	switch {
	case errors.As(err, &fe):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input", fe)
	case errors.Is(err, ErrDuplicateName):
		respond.Error(c, http.StatusConflict, "duplicate_name", ErrDuplicateName.Error(), nil)
	case errors.Is(err, ErrCategoryInUse):
		respond.Error(c, http.StatusConflict, "category_in_use", ErrCategoryInUse.Error(), nil)
	case errors.Is(err, ErrCategoryNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", ErrCategoryNotFound.Error(), nil)
	case errors.Is(err, ErrSkillNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", ErrSkillNotFound.Error(), nil)
	case errors.Is(err, media.ErrUpstream):
		respond.Error(c, http.StatusBadGateway, "media_error", "media store operation failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
