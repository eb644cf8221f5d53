package util

import (
	"errors"
	"strings"
)

// SanitizeKeySegment turns a caller-supplied ID into a single storage key
// segment, rejecting traversal patterns.
func SanitizeKeySegment(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid key segment")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid key segment")
	}
	return s, nil
}
