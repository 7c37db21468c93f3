package domain

import (
	"strconv"
	"strings"
)

// ParseProductID parses a catalog entity id. Non-numeric and non-positive
// values yield ErrInvalidProductID.
func ParseProductID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidProductID
	}
	return id, nil
}

// FormatProductID renders an entity id for transport and event payloads.
func FormatProductID(id int64) string {
	return strconv.FormatInt(id, 10)
}
