package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cv-builder/internal/shared/telemetry"
)

// Extractor turns resume text into a resume record. The record is returned
// as raw JSON and hydrated like any fetched record.
type Extractor interface {
	Extract(ctx context.Context, text string) (json.RawMessage, error)
}

// Unavailable is the Extractor used when no extraction service is configured.
type Unavailable struct{}

// Extract returns ErrUnavailable.
func (Unavailable) Extract(context.Context, string) (json.RawMessage, error) {
	return nil, ErrUnavailable
}

const maxResponseSize = 2 << 20

// HTTPExtractor calls an external extraction service. The service receives
// {"text": "..."} and answers with the record, optionally fenced or wrapped
// in prose.
type HTTPExtractor struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPExtractor constructs an HTTPExtractor.
func NewHTTPExtractor(url, apiKey string, timeout time.Duration) (*HTTPExtractor, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("EXTRACTOR_URL is required")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPExtractor{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type extractRequest struct {
	Text string `json:"text"`
}

// Extract posts text to the service and returns the JSON object it answered with.
func (e *HTTPExtractor) Extract(ctx context.Context, text string) (json.RawMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidInput)
	}
	payload, err := json.Marshal(extractRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	start := time.Now()
	resp, err := e.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, fmt.Errorf("extractor request timeout: %w", err)
		}
		return nil, fmt.Errorf("extractor request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("extractor response read: %w", err)
	}
	telemetry.Info("import.extract", map[string]any{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
		"text_chars":  len(text),
	})
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("extractor error: status %d", resp.StatusCode)
	}

	record, err := ExtractRecord(string(body))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(record), nil
}

var (
	_ Extractor = Unavailable{}
	_ Extractor = (*HTTPExtractor)(nil)
)
