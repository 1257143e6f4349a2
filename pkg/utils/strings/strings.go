package strings

import "strings"

// SuppySuffix returns text ending with suffix.
//
// When text has the suffix already, it is returned as it is.
func SuppySuffix(text, suffix string) string {
	if strings.HasSuffix(text, suffix) {
		return text
	}
	return text + suffix
}
