package request

import (
	"fmt"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts RFC 3339, a zone-less date-time or a bare date. Zone-less values
// are read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q: expected RFC 3339, YYYY-MM-DDTHH:MM:SS or YYYY-MM-DD", value)
}

func parseOptionalTimestamp(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := ParseTimestamp(value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
