// Package previews renders resume previews over HTTP through the template
// registry and records preview metrics.
package previews

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cv-builder/internal/shared/metrics"
	"cv-builder/internal/shared/server/middleware"
	"cv-builder/internal/shared/server/respond"
	"cv-builder/internal/shared/telemetry"
	"cv-builder/resume/render"
)

// HeaderTemplateID names the template that actually rendered a preview.
const HeaderTemplateID = "X-Template-Id"

const (
	FormatHTML = "html"
	FormatText = "text"
)

// Service renders previews with a shared registry.
type Service struct {
	Registry *render.Registry
}

// NewService constructs a Service.
func NewService(registry *render.Registry) *Service {
	return &Service{Registry: registry}
}

// Result is one rendered preview.
type Result struct {
	TemplateID string
	Fallback   bool
	Node       *render.Node
}

// Render renders p with templateID, falling back to the registry default
// when the id is unknown. An empty id asks for the default and is not
// counted as a fallback.
func (s *Service) Render(templateID string, p render.Preview) Result {
	start := metrics.NowMillis()
	used, node := s.Registry.Render(templateID, p)
	metrics.ObservePreviewDurationMs(metrics.NowMillis() - start)
	metrics.IncPreviewRendered()

	res := Result{TemplateID: used, Node: node}
	if templateID != "" && used != templateID {
		res.Fallback = true
		metrics.IncPreviewFallback()
		telemetry.Warn("preview.template_fallback", map[string]any{
			"requested": templateID,
			"used":      used,
		})
	}
	return res
}

// Write renders p and writes it in the format named by the "format" query
// parameter, HTML by default. The template comes from the "template" query
// parameter.
func (s *Service) Write(c *gin.Context, p render.Preview) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", FormatHTML)))
	if format != FormatHTML && format != FormatText {
		respond.Error(c, http.StatusBadRequest, "validation_error", "format must be html or text", nil)
		return
	}

	res := s.Render(strings.TrimSpace(c.Query("template")), p)
	c.Set(middleware.TemplateIDKey, res.TemplateID)
	if res.TemplateID != "" {
		c.Header(HeaderTemplateID, res.TemplateID)
	}

	if format == FormatText {
		respond.Text(c, http.StatusOK, render.Text(res.Node))
		return
	}
	respond.HTML(c, http.StatusOK, render.HTML(res.Node))
}

// ContactFromContext builds preview contact data from the caller identity.
func ContactFromContext(c *gin.Context) render.Contact {
	return render.Contact{
		Name:  middleware.UserNameFromContext(c),
		Email: middleware.UserEmailFromContext(c),
	}
}
