package shared

import (
	"bytes"
	"strings"
	"unicode"
)

func TruncateWithEllipsis(text string, maxLen int) string {
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}

// SanitizeTableName maps a bot username (a handle like "birb.bsky.social")
// onto an identifier that is safe to splice into a CREATE TABLE statement.
// Anything outside [0-9a-zA-Z] becomes an underscore; runs are merged.
func SanitizeTableName(handle string) string {

	var buf bytes.Buffer
	for i := 0; i < len(handle); i++ {
		c := handle[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			buf.WriteByte(c)
		} else {
			buf.WriteString("_")
		}
	}
	res := strings.ToLower(buf.String())

	for {
		merged := strings.ReplaceAll(res, "__", "_")
		if len(merged) == len(res) {
			break
		}
		res = merged
	}
	return strings.Trim(res, "_")
}
