package mediaservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/testcloud/image/upload", r.URL.Path)

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.PostForm.Get("file") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		assert.Equal(t, "unsigned", r.PostForm.Get("upload_preset"))
		assert.Equal(t, "blogging", r.PostForm.Get("folder"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url": "https://media.example.com/blogging/abc123.png"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "testcloud", "unsigned", "blogging")

	t.Run("valid upload", func(t *testing.T) {
		url, err := c.UploadImage(context.Background(), "data:image/png;base64,iVBORw0KGgo=")
		assert.NoError(t, err)
		assert.Equal(t, "https://media.example.com/blogging/abc123.png", url)
	})

	t.Run("empty image", func(t *testing.T) {
		_, err := c.UploadImage(context.Background(), "")
		assert.ErrorIs(t, err, ErrUploadFailed)
	})
}

func TestUploadImageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "testcloud", "unsigned", "blogging")

	_, err := c.UploadImage(context.Background(), "data:image/png;base64,iVBORw0KGgo=")
	assert.ErrorIs(t, err, ErrUploadFailed)
}
