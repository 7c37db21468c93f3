package utils

import "time"

// ParseTimePtr parses an RFC3339 string pointer into *time.Time.
// Returns nil if input is nil, empty, or parsing fails.
func ParseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	tt := t.UTC()
	return &tt
}

// FormatTimePtr renders an optional time as an RFC3339 string pointer in UTC.
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
