package utils

import (
	"regexp"
	"strings"
)

var (
	acronymBoundary    = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	lowerUpperBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// ToSnakeCase converts CamelCase and mixedCase identifiers to snake_case.
// Input that is already snake_case comes back unchanged, so the conversion
// can be applied more than once.
func ToSnakeCase(name string) string {
	s := acronymBoundary.ReplaceAllString(name, "${1}_${2}")
	s = lowerUpperBoundary.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}
