// Package format holds the date and fallback formatting shared by every
// resume template. Renderers must not format dates on their own.
package format

import (
	"strings"
	"time"
)

const (
	// Placeholder is shown for a missing date.
	Placeholder = "—"
	// PresentLabel is shown as the end of an ongoing period.
	PresentLabel = "Present"
)

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// Parse reads an ISO 8601 date or date-time. Values without a zone are taken
// as UTC so the calendar month never shifts.
func Parse(iso string) (time.Time, bool) {
	value := strings.TrimSpace(iso)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthYear renders an ISO date as "Mar 2021". Empty input yields the
// placeholder and unparseable input is returned unchanged.
func MonthYear(iso string) string {
	if strings.TrimSpace(iso) == "" {
		return Placeholder
	}
	t, ok := Parse(iso)
	if !ok {
		return iso
	}
	return t.Format("Jan 2006")
}

// Year renders the four-digit year of an ISO date, with the same fallbacks
// as MonthYear.
func Year(iso string) string {
	if strings.TrimSpace(iso) == "" {
		return Placeholder
	}
	t, ok := Parse(iso)
	if !ok {
		return iso
	}
	return t.Format("2006")
}

// Period is the date span of a work entry.
type Period struct {
	Start   string
	End     string
	Current bool
}

// EndLabel returns "Present" for an ongoing or open-ended period, otherwise
// the month and year of its end.
func EndLabel(p Period) string {
	if p.Current || strings.TrimSpace(p.End) == "" {
		return PresentLabel
	}
	return MonthYear(p.End)
}

// Range joins the start month and the end label with sep.
func Range(p Period, sep string) string {
	return MonthYear(p.Start) + sep + EndLabel(p)
}

// YearRange joins two years with sep.
func YearRange(start, end, sep string) string {
	return Year(start) + sep + Year(end)
}
