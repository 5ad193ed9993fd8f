package content

import (
	"fmt"
	"time"
)

// parseDate accepts the date forms the source emits: plain dates and RFC 3339
// timestamps.
func parseDate(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z07:00"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatHuman renders an ISO date as "2 January 2006". Unparseable input is
// returned as-is rather than dropped.
func FormatHuman(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return value
	}
	return fmt.Sprintf("%d %s %d", t.Day(), t.Month().String(), t.Year())
}

// Year extracts the four-digit year of an ISO date, or empty when the date is
// unparseable.
func Year(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d", t.Year())
}

// FormatRange renders a work-experience timeline range as "Jan 2006 ~ Jul
// 2008". An empty end renders as "Present".
func FormatRange(start, end string) string {
	format := func(value string) string {
		t, ok := parseDate(value)
		if !ok {
			return value
		}
		return t.Format("Jan 2006")
	}

	from := format(start)
	to := "Present"
	if end != "" {
		to = format(end)
	}
	return from + " ~ " + to
}

// TenureDays computes the inclusive day count between two ISO dates. Zero when
// either side is unparseable or the range is inverted.
func TenureDays(start, end string) int {
	from, ok := parseDate(start)
	if !ok {
		return 0
	}
	to, ok := parseDate(end)
	if !ok {
		return 0
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}
