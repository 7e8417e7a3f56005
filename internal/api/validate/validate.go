package validate

import (
	"fmt"
	"strings"
)

// Filename validates a blob name before it touches the filesystem:
// - 1-255 bytes
// - no path separators, no parent references
// - no control characters
// Returns an error describing the first violated rule.
func Filename(v string) error {
	if v == "" {
		return fmt.Errorf("filename is required")
	}
	if len(v) > 255 {
		return fmt.Errorf("filename exceeds 255 bytes")
	}
	if strings.ContainsAny(v, "/\\") {
		return fmt.Errorf("filename must not contain path separators")
	}
	if v == "." || v == ".." || strings.Contains(v, "..") {
		return fmt.Errorf("filename must not contain parent references")
	}
	for _, r := range v {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("filename contains control characters")
		}
	}
	return nil
}

// NonEmpty reports a missing required field.
func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
