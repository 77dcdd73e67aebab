package api

import (
	"encoding/json"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp decodes the backend's date fields, which arrive with or without
// a zone offset or as free text. Anything unreadable decodes to the zero time.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	t.Time = ParseTime(s)
	return nil
}

// ParseTime reads s with the first matching layout; values without an offset
// are taken as UTC.
func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v
		}
	}
	return time.Time{}
}
