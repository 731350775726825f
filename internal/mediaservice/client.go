package mediaservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrUploadFailed = errors.New("failed to upload image")

// Client uploads images to the hosted media service and returns the
// public URL. The image payload is the data URL produced by the
// frontend editor.
type Client struct {
	baseURL      string
	cloudName    string
	uploadPreset string
	folder       string
	httpClient   *http.Client
}

func NewClient(baseURL, cloudName, uploadPreset, folder string) *Client {
	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		folder:       folder,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) UploadImage(ctx context.Context, image string) (string, error) {
	if image == "" {
		return "", ErrUploadFailed
	}

	form := url.Values{}
	form.Set("file", image)
	form.Set("upload_preset", c.uploadPreset)
	form.Set("folder", c.folder)

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUploadFailed, resp.StatusCode)
	}

	var payload struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if payload.SecureURL == "" {
		return "", ErrUploadFailed
	}

	return payload.SecureURL, nil
}
