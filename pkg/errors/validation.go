package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateTrayName validates a tray name for safety and correctness.
// Tray names end up in URLs, cache keys and file names, so the rules are
// intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateTrayName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "tray name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "tray name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "tray name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "tray name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateProjectFilename validates a project filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateProjectFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidProject, "project filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidProject, "project filename cannot contain path separators")
	}

	// No hidden files (starting with .)
	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidProject, "project filename cannot be a hidden file")
	}

	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// outputFormats lists the renderable layout output formats.
var outputFormats = map[string]bool{
	"svg":  true,
	"png":  true,
	"pdf":  true,
	"json": true,
}

// ValidateFormat validates a layout output format name.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	if !outputFormats[strings.ToLower(format)] {
		return New(ErrCodeInvalidFormat, "unsupported output format: %q", format)
	}
	return nil
}

// cableTagRegex matches reasonable cable tag identifiers.
var cableTagRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/+-]*$`)

// ValidateCableTag validates a cable tag identifier.
func ValidateCableTag(tag string) error {
	if tag == "" {
		return New(ErrCodeInvalidInput, "cable tag cannot be empty")
	}

	if len(tag) > 128 {
		return New(ErrCodeInvalidInput, "cable tag too long (max 128 characters)")
	}

	if !cableTagRegex.MatchString(tag) {
		return New(ErrCodeInvalidInput, "invalid cable tag: %q", tag)
	}

	return nil
}
