package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3PhotoStore uploads completion photos to an S3 bucket (or an
// S3-compatible store when an endpoint override is configured).
type S3PhotoStore struct {
	client        *s3.Client
	bucketName    string
	publicBaseURL string
}

// NewS3PhotoStore creates a photo store. publicBaseURL is the prefix that
// serves the bucket's objects; when empty the virtual-hosted S3 URL is used.
func NewS3PhotoStore(client *s3.Client, bucketName, publicBaseURL string) *S3PhotoStore {
	return &S3PhotoStore{
		client:        client,
		bucketName:    bucketName,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// NewS3Client builds the S3 client, switching to path-style addressing when
// an endpoint override is set.
func NewS3Client(awsConfig aws.Config, endpointURL string) *s3.Client {
	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
			o.UsePathStyle = true
		}
	})
}

// UploadPhoto stores body under key and returns the URL it can be
// retrieved from.
func (s *S3PhotoStore) UploadPhoto(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return s.PublicURL(key), nil
}

func (s *S3PhotoStore) PublicURL(key string) string {
	escaped := escapeKey(key)
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + escaped
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.client.Options().Region, escaped)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
