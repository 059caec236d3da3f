package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// SupabasePhotoStore uploads completion photos to Supabase Storage
type SupabasePhotoStore struct {
	projectID  string
	apiKey     string
	bucketName string
	baseURL    string
	httpClient *http.Client
}

// NewSupabasePhotoStore creates a new Supabase Storage client
func NewSupabasePhotoStore(projectID, apiKey, bucketName string) *SupabasePhotoStore {
	return &SupabasePhotoStore{
		projectID:  projectID,
		apiKey:     apiKey,
		bucketName: bucketName,
		baseURL:    fmt.Sprintf("https://%s.supabase.co", projectID),
		httpClient: &http.Client{},
	}
}

// UploadPhoto uploads a photo to the bucket and returns its public URL
func (s *SupabasePhotoStore) UploadPhoto(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucketName, escapeKey(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return s.PublicURL(key), nil
}

// PublicURL returns the public URL for a stored photo
func (s *SupabasePhotoStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucketName, escapeKey(key))
}
