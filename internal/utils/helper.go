package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a positive integer path id.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// IntOrDefault coerces a query value to int, returning fallback when the
// value is absent or not an integer.
func IntOrDefault(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
