package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Description is the body of a work entry. Sources supply either an ordered
// list of bullets or one free-text block; the two shapes are kept apart until
// hydration folds everything into bullets.
type Description struct {
	free    bool
	text    string
	bullets []string
}

// Bulleted builds a description from individual bullets.
func Bulleted(bullets ...string) Description {
	return Description{bullets: append([]string(nil), bullets...)}
}

// FreeText builds a description from one block of text.
func FreeText(text string) Description {
	return Description{free: true, text: text}
}

// IsFreeText reports whether the description was supplied as a single block.
func (d Description) IsFreeText() bool {
	return d.free
}

// Text returns the raw free text, or the bullets joined by newlines.
func (d Description) Text() string {
	if d.free {
		return d.text
	}
	return strings.Join(d.bullets, "\n")
}

// Items returns a copy of the raw bullets. Free text yields nil.
func (d Description) Items() []string {
	if d.free {
		return nil
	}
	return append([]string(nil), d.bullets...)
}

// Lines returns the display bullets: free text is split on line breaks, every
// candidate is trimmed and blank ones are dropped.
func (d Description) Lines() []string {
	var candidates []string
	if d.free {
		candidates = strings.Split(strings.ReplaceAll(d.text, "\r\n", "\n"), "\n")
	} else {
		candidates = d.bullets
	}
	out := make([]string, 0, len(candidates))
	for _, line := range candidates {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// MarshalJSON writes bullets as an array and free text as a string.
func (d Description) MarshalJSON() ([]byte, error) {
	if d.free {
		return json.Marshal(d.text)
	}
	if d.bullets == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.bullets)
}

// UnmarshalJSON accepts an array of strings, a single string or null.
// Anything else decodes to an empty description rather than failing, so a
// malformed description never sinks the surrounding record.
func (d *Description) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*d = Description{}
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err == nil {
			*d = FreeText(text)
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil
		}
		bullets := make([]string, 0, len(items))
		for _, item := range items {
			var line string
			if err := json.Unmarshal(item, &line); err != nil {
				continue
			}
			bullets = append(bullets, line)
		}
		d.bullets = bullets
	}
	return nil
}
