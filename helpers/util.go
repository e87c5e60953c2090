package helpers

import (
	"errors"
	"strings"
)

// CollapseWhitespace joins all whitespace-separated runs with single spaces.
// Price blocks on category pages render as multi-line text like
// "From\n  $40.00 - $45.00".
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// LastPathSegment returns the final non-empty path segment of a URL or path.
func LastPathSegment(target string) (string, error) {
	trimmed := strings.TrimRight(target, "/")
	parts := strings.Split(trimmed, "/")
	last := parts[len(parts)-1]
	if last == "" {
		return "", errors.New("no path segment found")
	}
	return last, nil
}
