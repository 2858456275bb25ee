package adapter

import (
	"time"

	"github.com/platebook/platebook-client/internal/normalize"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// timestamp coalesces the candidate keys and parses the first value that
// looks like a date, falling back to def. The backend mixes RFC 3339 and
// plain dates depending on which code path wrote the record.
func timestamp(record map[string]any, def time.Time, keys ...string) time.Time {
	raw := normalize.String(record, "", keys...)
	if raw == "" {
		return def
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return def
}
