package common

import (
	"strconv"
	"strings"
)

// ParsePositiveInt parses positive integers with fallback.
func ParsePositiveInt(value string, fallback int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback, false
	}
	return parsed, true
}

// ParseBool accepts the usual truthy spellings ("1", "true", "yes", "on").
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Page clamps paging parameters and returns the [start, end) window over total items.
// Pages past the end yield an empty window at total.
func Page(total, page, limit int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if total <= 0 {
		return 0, 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	if page-1 >= pages {
		return total, total
	}
	start = (page - 1) * limit
	if limit >= total-start {
		return start, total
	}
	return start, start + limit
}
