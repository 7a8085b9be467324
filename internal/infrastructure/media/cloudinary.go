package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"artist-hub.backend/internal/config"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// CloudinaryUploader pushes image bytes to Cloudinary using its signed
// upload API. Uploads use a caller-chosen public id with overwrite enabled,
// so re-uploading the same id replaces the asset.
type CloudinaryUploader struct {
	cfg        config.CloudinaryConfig
	baseURL    string
	httpClient *http.Client
}

var timeNow = time.Now

// NewCloudinaryUploader creates a new uploader
func NewCloudinaryUploader(cfg config.CloudinaryConfig) *CloudinaryUploader {
	return &CloudinaryUploader{
		cfg:        cfg,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewCloudinaryUploaderWithBaseURL creates an uploader against a custom API
// endpoint (used in tests)
func NewCloudinaryUploaderWithBaseURL(cfg config.CloudinaryConfig, baseURL string) *CloudinaryUploader {
	u := NewCloudinaryUploader(cfg)
	u.baseURL = baseURL
	return u
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the image to Cloudinary and returns its secure URL
func (u *CloudinaryUploader) Upload(ctx context.Context, publicID string, data []byte) (string, error) {
	timestamp := strconv.FormatInt(timeNow().Unix(), 10)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"public_id": publicID,
		"overwrite": "true",
		"timestamp": timestamp,
		"api_key":   u.cfg.APIKey,
		"signature": u.sign(publicID, timestamp),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return "", err
		}
	}

	part, err := writer.CreateFormFile("file", "image")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	url := u.baseURL + "/" + u.cfg.CloudName + "/image/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("cloudinary upload failed: unexpected response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary upload failed: status %d: %s", resp.StatusCode, parsed.Error.Message)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload failed: empty secure_url")
	}

	return parsed.SecureURL, nil
}

// sign builds the request signature: sha1 of the sorted signed params plus
// the API secret, per Cloudinary's upload API.
func (u *CloudinaryUploader) sign(publicID, timestamp string) string {
	toSign := "overwrite=true&public_id=" + publicID + "&timestamp=" + timestamp + u.cfg.APISecret
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}
