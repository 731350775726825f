package userservice

import (
	"context"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// allocateUsername derives a handle from the local part of the email.
// On collision a 5 character random suffix is appended without a second
// existence check; the unique index on username catches the residual
// collision at insert time.
func (s *UserService) allocateUsername(ctx context.Context, email string) (string, error) {
	username := strings.SplitN(email, "@", 2)[0]

	exists, err := s.m.usernameExists(ctx, username)
	if err != nil {
		return "", err
	}

	if exists {
		suffix, err := gonanoid.Generate(suffixAlphabet, 5)
		if err != nil {
			return "", err
		}
		username += suffix
	}

	return username, nil
}
