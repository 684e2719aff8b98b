package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	resumeCreatedTotal   atomic.Uint64
	resumeUpdatedTotal   atomic.Uint64
	draftActionsTotal    atomic.Uint64
	previewRenderedTotal atomic.Uint64
	previewFallbackTotal atomic.Uint64
	panicsTotal          atomic.Uint64

	previewDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncResumeCreated increments the created counter.
func IncResumeCreated() {
	resumeCreatedTotal.Add(1)
}

// IncResumeUpdated increments the updated counter.
func IncResumeUpdated() {
	resumeUpdatedTotal.Add(1)
}

// AddDraftActions counts editor actions applied to drafts.
func AddDraftActions(n int) {
	if n <= 0 {
		return
	}
	draftActionsTotal.Add(uint64(n))
}

// IncPreviewRendered increments the rendered counter.
func IncPreviewRendered() {
	previewRenderedTotal.Add(1)
}

// IncPreviewFallback counts previews whose requested template was unknown.
func IncPreviewFallback() {
	previewFallbackTotal.Add(1)
}

// IncPanic counts handler panics caught by the recovery middleware.
func IncPanic() {
	panicsTotal.Add(1)
}

// ObservePreviewDurationMs records a render duration in milliseconds.
func ObservePreviewDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	previewDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "resume_created_total", "Total resumes created", resumeCreatedTotal.Load())
	writeCounter(&buf, "resume_updated_total", "Total resumes updated", resumeUpdatedTotal.Load())
	writeCounter(&buf, "draft_actions_total", "Total editor actions applied to drafts", draftActionsTotal.Load())
	writeCounter(&buf, "preview_rendered_total", "Total previews rendered", previewRenderedTotal.Load())
	writeCounter(&buf, "preview_fallback_total", "Total previews rendered with the default template", previewFallbackTotal.Load())
	writeCounter(&buf, "http_panics_total", "Total recovered handler panics", panicsTotal.Load())
	writeHistogram(&buf, "preview_render_duration_ms", "Preview render duration in milliseconds", previewDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
