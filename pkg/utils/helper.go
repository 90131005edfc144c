package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParsePage parses a zero-based page number. Missing, malformed or
// negative values fall back to page 0.
func ParsePage(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil || result < 0 {
		return 0
	}
	return result
}

// ParseSize parses a page window length. Missing, malformed or
// non-positive values yield 0, which means "no window" (return all).
func ParseSize(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return 0
	}
	return result
}
