package userservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoogleVerifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer valid-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email": "user@example.com", "name": "Example User"}`))
	}))
	t.Cleanup(srv.Close)

	verifier := NewGoogleVerifier(srv.URL)

	t.Run("valid token", func(t *testing.T) {
		identity, err := verifier.Verify(context.Background(), "valid-token")
		assert.NoError(t, err)
		assert.Equal(t, "user@example.com", identity.Email)
		assert.Equal(t, "Example User", identity.Name)
	})

	t.Run("rejected token", func(t *testing.T) {
		_, err := verifier.Verify(context.Background(), "expired-token")
		assert.ErrorIs(t, err, ErrExternalToken)
	})
}
