package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRenderIncludesCountersAndHistogram(t *testing.T) {
	IncResumeCreated()
	AddDraftActions(3)
	AddDraftActions(-1)
	IncPanic()
	ObservePreviewDurationMs(7)
	ObservePreviewDurationMs(-2)

	out := Render()
	for _, want := range []string{
		"# TYPE resume_created_total counter",
		"draft_actions_total",
		"http_panics_total",
		`preview_render_duration_ms_bucket{le="10"}`,
		`preview_render_duration_ms_bucket{le="+Inf"}`,
		"preview_render_duration_ms_count",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in metrics output:\n%s", want, out)
		}
	}
}

func TestHandlerServesTextFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected text/plain content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "preview_rendered_total") {
		t.Fatalf("expected preview counter in body")
	}
}
