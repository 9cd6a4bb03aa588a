package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage issues short-lived upload credentials for direct browser
// uploads and resolves the public read URL of an uploaded object.
type Storage interface {
	// PresignedPost returns the form POST target and the signed form
	// fields authorizing exactly one upload of the given key. The
	// content type is bound into the policy, so the upload must declare
	// the same type.
	PresignedPost(ctx context.Context, key, contentType string) (url string, fields map[string]string, err error)

	// PublicURL returns the URL the object will be readable at once
	// uploaded.
	PublicURL(key string) string
}

// S3Storage implements Storage against any S3-compatible store.
// Works with Cloudflare R2, MinIO, AWS S3, DigitalOcean Spaces, etc.
type S3Storage struct {
	presignClient *s3.PresignClient
	bucket        string
	publicURL     string
	grantExpiry   time.Duration
}

// S3Config holds configuration for S3-compatible storage.
type S3Config struct {
	AccountID   string // R2 account (builds the endpoint); leave empty with Endpoint set
	Endpoint    string // Optional: full endpoint for MinIO, Spaces, etc.
	AccessKey   string
	SecretKey   string
	Bucket      string
	PublicURL   string // Base URL objects are publicly readable under
	GrantExpiry time.Duration
}

// New creates an S3-compatible storage instance.
func New(c S3Config) (*S3Storage, error) {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.AccountID)
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &S3Storage{
		presignClient: s3.NewPresignClient(client),
		bucket:        c.Bucket,
		publicURL:     strings.TrimSuffix(c.PublicURL, "/"),
		grantExpiry:   c.GrantExpiry,
	}, nil
}

func (s *S3Storage) PresignedPost(ctx context.Context, key, contentType string) (string, map[string]string, error) {
	req, err := s.presignClient.PresignPostObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignPostOptions) {
		opts.Expires = s.grantExpiry
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return req.URL, req.Values, nil
}

func (s *S3Storage) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", s.publicURL, key)
}
