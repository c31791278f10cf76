package store

import (
	"strconv"
	"strings"
)

// parseIndex reports whether token is an integer index. Surrounding
// whitespace and a sign are accepted.
func parseIndex(token string) (int, bool) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return n, true
}
