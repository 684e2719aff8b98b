package importer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractRecord pulls the JSON object out of an extractor response. Markdown
// code fences and chatter around the object are tolerated.
func ExtractRecord(raw string) ([]byte, error) {
	payload := stripFences(strings.TrimSpace(raw))
	if payload == "" {
		return nil, fmt.Errorf("%w: empty response", ErrNoRecord)
	}
	if json.Valid([]byte(payload)) && strings.HasPrefix(payload, "{") {
		return []byte(payload), nil
	}

	start := strings.Index(payload, "{")
	end := strings.LastIndex(payload, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, ErrNoRecord
	}

	candidate := payload[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, fmt.Errorf("%w: invalid json object", ErrNoRecord)
	}
	return []byte(candidate), nil
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop an info string such as "json".
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = ""
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
