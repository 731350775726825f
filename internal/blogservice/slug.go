package blogservice

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const slugSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newSlug derives the public blog id from the title: non-alphanumeric
// runs become single hyphens, case is preserved, and a random suffix
// keeps repeated titles unique.
func newSlug(title string) (string, error) {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return ' '
		}
	}, title)

	base := strings.Join(strings.Fields(mapped), "-")

	suffix, err := gonanoid.Generate(slugSuffixAlphabet, 12)
	if err != nil {
		return "", err
	}

	if base == "" {
		return suffix, nil
	}

	return base + "-" + suffix, nil
}
