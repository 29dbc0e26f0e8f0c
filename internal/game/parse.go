package game

import (
	"strconv"
	"strings"
)

// parseIndex converts a 1-based numeric token into a 0-based slot index
// bounded by n, or -1.
func parseIndex(token string, n int) int {
	idx, err := strconv.Atoi(token)
	if err != nil || idx < 1 || idx > n {
		return -1
	}
	return idx - 1
}

// hasFoldPrefix reports whether name starts with token, case-insensitively.
func hasFoldPrefix(name, token string) bool {
	if len(token) > len(name) {
		return false
	}
	return strings.EqualFold(name[:len(token)], token)
}
