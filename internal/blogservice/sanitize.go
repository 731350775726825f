package blogservice

import "regexp"

var scriptTagRX = regexp.MustCompile(`(?i)<\s*script[^>]*>(.*?)<\s*/\s*script\s*>`)

// sanitizeText strips script tags from caller-supplied text before it
// is persisted.
func sanitizeText(s string) string {
	return scriptTagRX.ReplaceAllString(s, "")
}
