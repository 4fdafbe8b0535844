package internal

import (
	"path/filepath"
	"strings"
)

// unknownToken is the fallback when sanitization leaves nothing usable.
const unknownToken = "unknown"

// SanitizeToken converts arbitrary text into a filesystem-safe filename
// token. Path separators and every character outside [A-Za-z0-9._-]
// become underscores, runs of underscores collapse to one, and
// leading/trailing underscores are trimmed. The result is never empty:
// inputs with no usable characters become "unknown".
//
// The function is pure and idempotent: sanitizing an already-sanitized
// token yields the same token.
func SanitizeToken(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, string(filepath.Separator), "_")
	s = strings.ReplaceAll(s, "/", "_")

	var b strings.Builder
	b.Grow(len(s))
	lastUnderscore := false
	for _, r := range s {
		if isSafeRune(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		// Underscores and unsafe characters collapse together
		if !lastUnderscore {
			b.WriteByte('_')
		}
		lastUnderscore = true
	}

	out := strings.Trim(b.String(), "_")
	if out == "" {
		return unknownToken
	}
	return out
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '.' || r == '-':
		return true
	}
	return false
}

// SanitizeValue renders a JSON value to text and sanitizes it for use
// in a filename. Nil and null values sanitize to "unknown".
func SanitizeValue(v *Value) string {
	if v == nil || v.Kind == KindNull {
		return unknownToken
	}
	return SanitizeToken(v.Text())
}
