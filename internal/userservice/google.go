package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

var ErrExternalToken = errors.New("failed to authenticate with the identity provider")

// Identity is the verified profile returned by the external identity
// provider.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type IdentityVerifier interface {
	Verify(ctx context.Context, accessToken string) (*Identity, error)
}

const DefaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// GoogleVerifier resolves a Google OAuth access token to the email and
// display name it was issued for by calling the userinfo endpoint.
type GoogleVerifier struct {
	userInfoURL string
	httpClient  *http.Client
}

func NewGoogleVerifier(userInfoURL string) *GoogleVerifier {
	if userInfoURL == "" {
		userInfoURL = DefaultGoogleUserInfoURL
	}

	return &GoogleVerifier{
		userInfoURL: userInfoURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (g *GoogleVerifier) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, ErrExternalToken
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrExternalToken
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, ErrExternalToken
	}

	if identity.Email == "" {
		return nil, ErrExternalToken
	}

	return &identity, nil
}
