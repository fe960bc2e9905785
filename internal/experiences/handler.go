package experiences

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

const maxUploadSize = 25 << 20 // 25MB, PDF attachments included

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
	rg.GET("/experiences", h.list)
	rg.GET("/experiences/:id", h.get)
}

// RegisterAdminRoutes attaches mutating routes. Static sub-paths are
// registered before the parameterized routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/experiences", h.create)
	rg.PUT("/experiences/reorder", h.reorder)
	rg.PUT("/experiences/:id", h.update)
	rg.POST("/experiences/:id/offer-letter", h.attachDocument(SlotOfferLetter))
	rg.DELETE("/experiences/:id/offer-letter", h.detachDocument(SlotOfferLetter))
	rg.POST("/experiences/:id/completion-certificate", h.attachDocument(SlotCertificate))
	rg.DELETE("/experiences/:id/completion-certificate", h.detachDocument(SlotCertificate))
	rg.DELETE("/experiences/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []Experience{}
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
	respond.OK(c, gin.H{"message": "experience deleted"})
}

func (h *Handler) attachDocument(slot DocSlot) gin.HandlerFunc {
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

		e, err := h.Svc.AttachDocument(c.Request.Context(), c.Param("id"), slot, file)
		if err != nil {
			writeError(c, err)
			return
		}
		respond.OK(c, e)
	}
}

func (h *Handler) detachDocument(slot DocSlot) gin.HandlerFunc {
	return func(c *gin.Context) {
		e, err := h.Svc.DetachDocument(c.Request.Context(), c.Param("id"), slot)
		if err != nil {
			writeError(c, err)
			return
		}
		respond.OK(c, e)
	}
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
	in.Company, _ = form.Value(c, "company")
	in.Role, _ = form.Value(c, "role")
	in.Location, _ = form.Value(c, "location")
	in.Description, _ = form.Value(c, "description")
	in.Status, _ = form.Value(c, "status")
	bindIntField(c, fe, "startMonth", func(v int) { in.StartMonth = v })
	bindIntField(c, fe, "startYear", func(v int) { in.StartYear = v })
	bindIntField(c, fe, "endMonth", func(v int) { in.EndMonth = &v })
	bindIntField(c, fe, "endYear", func(v int) { in.EndYear = &v })
	bindIntField(c, fe, "order", func(v int) { in.Order = v })
	return in, fe
}

func bindUpdate(c *gin.Context) (Update, validate.FieldErrors) {
	fe := validate.FieldErrors{}
	var upd Update
	if v, ok := form.Value(c, "company"); ok {
		upd.Company = &v
	}
	if v, ok := form.Value(c, "role"); ok {
		upd.Role = &v
	}
	if v, ok := form.Value(c, "location"); ok {
		upd.Location = &v
	}
	if v, ok := form.Value(c, "description"); ok {
		upd.Description = &v
	}
	if v, ok := form.Value(c, "status"); ok {
		upd.Status = &v
	}
	bindIntField(c, fe, "startMonth", func(v int) { upd.StartMonth = &v })
	bindIntField(c, fe, "startYear", func(v int) { upd.StartYear = &v })
	bindIntField(c, fe, "endMonth", func(v int) { upd.EndMonth = &v })
	bindIntField(c, fe, "endYear", func(v int) { upd.EndYear = &v })
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
