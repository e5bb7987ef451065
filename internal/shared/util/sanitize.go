package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName is returned for names that are empty once directories are stripped.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName drops any client-supplied directory part, for either separator style.
func SanitizeFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == ".." {
		return "", ErrInvalidFileName
	}
	return s, nil
}
