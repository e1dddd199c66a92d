package performance

import (
	"strings"
	"time"
)

// TimestampLayout is the layout used when formatting new record timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// timestampLayouts are tried in order by ParseTimestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	TimestampLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"02.01.2006 15:04:05",
	"02.01.2006",
}

// MinTime is the sentinel returned for timestamps that cannot be parsed.
// It sorts before every real timestamp.
var MinTime = time.Time{}

// ParseTimestamp converts a record timestamp string to a time. The wall
// clock in the string is kept as-is: an explicit offset is honored for
// parsing but never converted to another zone, so the calendar day is the
// one written in the string. Unparseable input yields MinTime.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return MinTime
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return MinTime
}

// FormatTimestamp formats t in the canonical record layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
