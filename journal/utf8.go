package journal

import "strings"

// sanitizeUTF8 decodes buf as UTF-8, substituting the replacement
// character for invalid sequences, per SPEC_FULL.md §4.5's string-field
// decoding rule.
func sanitizeUTF8(buf []byte) string {
	return strings.ToValidUTF8(string(buf), "�")
}
