package utils

import "strings"

// Slugify lowercases s, collapses every run of non-alphanumeric characters
// into a single hyphen and trims leading/trailing hyphens. Returns fallback
// when nothing printable survives. Used for export filenames.
func Slugify(s, fallback string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return fallback
	}
	return slug
}
