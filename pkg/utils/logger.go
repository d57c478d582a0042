package utils

import (
	"slices"
	"strings"
)

var ValidLogLevels = []string{"debug", "info", "warn", "error", "fatal", "panic"}

// ValidateLogLevel reports whether level names a known level, ignoring case.
func ValidateLogLevel(level string) bool {
	return slices.Contains(ValidLogLevels, strings.ToLower(strings.TrimSpace(level)))
}
