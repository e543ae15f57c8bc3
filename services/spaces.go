package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/techspire-labs/academy-api/config"
)

// SpacesClient handles uploads to the S3-compatible object storage bucket
// (DigitalOcean Spaces) that backs admin-uploaded project artwork.
type SpacesClient struct {
	s3Client *s3.S3
	bucket   string
	endpoint string
	cdnURL   string
}

// SpacesConfig holds configuration for the Spaces client
type SpacesConfig struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
	CDNURL    string
}

// NewSpacesClient creates a new Spaces client
func NewSpacesClient(cfg SpacesConfig) (*SpacesClient, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Spaces session: %w", err)
	}

	return &SpacesClient{
		s3Client: s3.New(sess),
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
		cdnURL:   cfg.CDNURL,
	}, nil
}

// NewSpacesClientFromEnv builds a client from the loaded environment, or
// returns nil when the Spaces variables are not configured (uploads disabled).
func NewSpacesClientFromEnv(env *config.EnviornmentVariable) (*SpacesClient, error) {
	if env.SPACES_ACCESS_KEY == "" || env.SPACES_SECRET_KEY == "" || env.SPACES_BUCKET == "" {
		return nil, nil
	}
	return NewSpacesClient(SpacesConfig{
		AccessKey: env.SPACES_ACCESS_KEY,
		SecretKey: env.SPACES_SECRET_KEY,
		Bucket:    env.SPACES_BUCKET,
		Region:    env.SPACES_REGION,
		Endpoint:  env.SPACES_ENDPOINT,
		CDNURL:    env.SPACES_CDN_URL,
	})
}

// UploadFile uploads a file and returns its public URL
func (s *SpacesClient) UploadFile(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        aws.ReadSeekCloser(data),
		ACL:         aws.String("public-read"),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	// Return CDN URL if available, otherwise regular URL
	if s.cdnURL != "" {
		return fmt.Sprintf("%s/%s", s.cdnURL, key), nil
	}
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, key), nil
}

// ObjectKeyFromURL reports whether rawURL points at an object in this
// client's bucket, and returns the object key when it does. Foreign URLs
// (hand-pasted artwork, placeholder providers) return false.
func (s *SpacesClient) ObjectKeyFromURL(rawURL string) (string, bool) {
	prefixes := []string{
		fmt.Sprintf("https://%s.%s/", s.bucket, s.endpoint),
	}
	if s.cdnURL != "" {
		prefixes = append(prefixes, strings.TrimSuffix(s.cdnURL, "/")+"/")
	}

	for _, prefix := range prefixes {
		if key := strings.TrimPrefix(rawURL, prefix); key != rawURL && key != "" {
			return key, true
		}
	}
	return "", false
}

// DeleteFile removes an object from the bucket
func (s *SpacesClient) DeleteFile(ctx context.Context, key string) error {
	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
