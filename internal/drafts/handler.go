package drafts

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cv-builder/internal/importer"
	"cv-builder/internal/previews"
	"cv-builder/internal/shared/server/middleware"
	"cv-builder/internal/shared/server/respond"
	"cv-builder/internal/shared/telemetry"
	"cv-builder/internal/shared/util"
	"cv-builder/resume/editor"
	"cv-builder/resume/model"
)

const maxActionsSize = 256 << 10 // 256KB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	Previews       *previews.Service
	MaxImportBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, pv *previews.Service, maxImportBytes int64) *Handler {
	if maxImportBytes <= 0 {
		maxImportBytes = 5 << 20
	}
	return &Handler{Svc: svc, Previews: pv, MaxImportBytes: maxImportBytes}
}

// RegisterRoutes attaches draft routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/drafts", h.create)
	rg.POST("/drafts/import", h.importRecord)
	rg.POST("/drafts/import/pdf", h.importPDF)
	rg.GET("/drafts/:id", h.get)
	rg.DELETE("/drafts/:id", h.discard)
	rg.POST("/drafts/:id/actions", h.actions)
	rg.GET("/drafts/:id/preview", h.preview)
	rg.POST("/drafts/:id/submit", h.submit)
}

type createRequest struct {
	ResumeID string `json:"resumeId"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}
	if req.ResumeID != "" {
		c.Set(middleware.ResumeIDKey, req.ResumeID)
	}

	d, err := h.Svc.New(c.Request.Context(), userID, req.ResumeID)
	if err != nil {
		writeError(c, err, "failed to open draft")
		return
	}
	c.Set(middleware.DraftIDKey, d.ID)
	respond.JSON(c, http.StatusCreated, toResponse(d))
}

func (h *Handler) importRecord(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxImportBytes)
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "import body too large", nil)
		return
	}

	d, err := h.Svc.Import(c.Request.Context(), userID, raw)
	if err != nil {
		writeError(c, err, "failed to import record")
		return
	}
	c.Set(middleware.DraftIDKey, d.ID)
	respond.JSON(c, http.StatusCreated, toResponse(d))
}

func (h *Handler) importPDF(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxImportBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "file exceeds the import limit", gin.H{"limitBytes": h.MaxImportBytes})
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	d, err := h.Svc.ImportPDF(c.Request.Context(), userID, data)
	if err != nil {
		writeError(c, err, "failed to import pdf")
		return
	}
	c.Set(middleware.DraftIDKey, d.ID)
	telemetry.Info("draft.import_pdf", map[string]any{
		"draft_id":  d.ID,
		"file_name": fileName,
		"bytes":     len(data),
	})
	respond.JSON(c, http.StatusCreated, toResponse(d))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set(middleware.DraftIDKey, id)

	d, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		writeError(c, err, "failed to fetch draft")
		return
	}
	respond.OK(c, toResponse(d))
}

func (h *Handler) discard(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set(middleware.DraftIDKey, id)

	if err := h.Svc.Discard(c.Request.Context(), userID, id); err != nil {
		writeError(c, err, "failed to discard draft")
		return
	}
	c.Status(http.StatusNoContent)
}

type actionsRequest struct {
	Actions json.RawMessage `json:"actions"`
}

func (h *Handler) actions(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set(middleware.DraftIDKey, id)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxActionsSize)
	var req actionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	actions, err := editor.DecodeActions(req.Actions)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	d, err := h.Svc.Apply(c.Request.Context(), userID, id, actions)
	if err != nil {
		writeError(c, err, "failed to apply actions")
		return
	}
	respond.OK(c, toResponse(d))
}

func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set(middleware.DraftIDKey, id)

	p, err := h.Svc.Preview(c.Request.Context(), userID, id, previews.ContactFromContext(c))
	if err != nil {
		writeError(c, err, "failed to preview draft")
		return
	}
	h.Previews.Write(c, p)
}

func (h *Handler) submit(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set(middleware.DraftIDKey, id)

	saved, err := h.Svc.Submit(c.Request.Context(), userID, id)
	if err != nil {
		writeError(c, err, "failed to submit draft")
		return
	}
	c.Set(middleware.ResumeIDKey, saved.ID)
	rec := saved.Record()
	respond.OK(c, gin.H{
		"resumeId": saved.ID,
		"resume":   rec,
	})
}

func writeError(c *gin.Context, err error, message string) {
	var fieldErrs model.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume has invalid fields", fieldErrs)
	case errors.Is(err, ErrResumeNotFound):
		respond.Error(c, http.StatusNotFound, "resume_not_found", "resume not found", nil)
	case errors.Is(err, ErrResumeForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "resume belongs to another user", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "draft not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "draft belongs to another user", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, importer.ErrUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "extractor_unavailable", "resume extraction is not configured", nil)
	case errors.Is(err, importer.ErrNoRecord):
		respond.Error(c, http.StatusBadGateway, "extractor_error", "extraction service returned no record", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", message, nil)
	}
}
