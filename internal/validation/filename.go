package validation

import (
	"path"
	"strings"
)

// SanitizeFilename reduces a caller-supplied filename to a path-safe
// object key suffix: any directory components are stripped and every
// character outside [a-zA-Z0-9._-] is replaced with a dash.
func SanitizeFilename(filename string) string {
	// Drop directory components, whichever separator the client used
	filename = path.Base(strings.ReplaceAll(filename, "\\", "/"))

	var sb strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}

	sanitized := sb.String()
	if sanitized == "" || sanitized == "." || sanitized == ".." {
		return "file"
	}
	return sanitized
}
