package userservice

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("access token is invalid")

type accessClaims struct {
	UserID int `json:"uid"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies the signed access tokens that bind a
// caller to a user id.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue signs a token whose only claim is the user id.
// TODO: tokens never expire; add an expiry and a refresh flow once the
// frontend can handle re-authentication.
func (t *TokenIssuer) Issue(userID int) (string, error) {
	claims := accessClaims{UserID: userID}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify returns the user id bound to the token, or ErrInvalidToken if
// the signature does not check out.
func (t *TokenIssuer) Verify(token string) (int, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
