// Package validation provides input validation for cssel file arguments.
package validation

import (
	"path/filepath"
	"strings"

	"github.com/conneroisu/cssel/internal/errors"
)

// ValidatePath checks a user-supplied file path for traversal and
// control-byte injection. Absolute paths are allowed; relative paths
// must stay inside the working directory.
func ValidatePath(path string) error {
	if path == "" {
		return errors.NewValidationError("path_empty", "path must not be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return errors.NewValidationError("path_null_byte", "path contains a null byte")
	}

	if !filepath.IsAbs(path) {
		clean := filepath.Clean(path)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return errors.NewValidationError("path_traversal",
				"relative path escapes the working directory").
				WithContext("path", path)
		}
	}

	return nil
}
