package previews

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cv-builder/resume/model"
	"cv-builder/resume/render"
)

func samplePreview() render.Preview {
	return render.NewPreview(model.Resume{Title: "Backend Engineer", Skills: []string{"Go"}}, render.Contact{Name: "Grace Hopper"})
}

func TestRenderCountsFallbackOnlyForUnknownIDs(t *testing.T) {
	svc := NewService(render.NewDefaultRegistry(render.WithDefault("template3")))

	res := svc.Render("", samplePreview())
	if res.TemplateID != "template3" || res.Fallback {
		t.Fatalf("expected default without fallback, got %+v", res)
	}

	res = svc.Render("template1", samplePreview())
	if res.TemplateID != "template1" || res.Fallback {
		t.Fatalf("expected template1 without fallback, got %+v", res)
	}

	res = svc.Render("retro", samplePreview())
	if res.TemplateID != "template3" || !res.Fallback {
		t.Fatalf("expected fallback to template3, got %+v", res)
	}
	if res.Node == nil {
		t.Fatalf("expected rendered node")
	}
}

func newPreviewRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/preview", func(c *gin.Context) {
		svc.Write(c, samplePreview())
	})
	return r
}

func TestWriteFormats(t *testing.T) {
	r := newPreviewRouter(NewService(render.NewDefaultRegistry()))

	tests := []struct {
		name        string
		query       string
		status      int
		contentType string
		contains    string
	}{
		{name: "html default", query: "", status: http.StatusOK, contentType: "text/html", contains: "Grace Hopper"},
		{name: "text", query: "?format=text&template=template3", status: http.StatusOK, contentType: "text/plain", contains: "GRACE HOPPER"},
		{name: "unknown format", query: "?format=docx", status: http.StatusBadRequest, contentType: "application/json", contains: "validation_error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preview"+tc.query, nil))
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, tc.contentType) {
				t.Fatalf("expected content type %s, got %q", tc.contentType, ct)
			}
			if !strings.Contains(rec.Body.String(), tc.contains) {
				t.Fatalf("expected %q in body:\n%s", tc.contains, rec.Body.String())
			}
		})
	}
}

func TestWriteSetsTemplateHeader(t *testing.T) {
	r := newPreviewRouter(NewService(render.NewDefaultRegistry(render.WithDefault("template4"))))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preview?template=nope", nil))
	if got := rec.Header().Get(HeaderTemplateID); got != "template4" {
		t.Fatalf("expected X-Template-Id template4, got %q", got)
	}
}
