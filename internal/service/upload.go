package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/livingword/site/internal/model"
	"github.com/livingword/site/internal/storage"
	"github.com/livingword/site/internal/validation"
)

var (
	// ErrInvalidUpload marks a client error: missing filename or content type.
	ErrInvalidUpload = errors.New("filename and contentType are required")

	// ErrStorageNotConfigured marks a server error: object storage
	// settings are incomplete, no credential request was attempted.
	ErrStorageNotConfigured = errors.New("object storage is not configured")
)

const uploadPrefix = "uploads/"

// UploadService issues time-bounded grants for direct browser uploads.
// Issuing a grant has no side effects; nothing is reserved until the
// caller exercises it against the object store.
type UploadService struct {
	storage storage.Storage
}

// NewUploadService creates the service. storage may be nil when object
// storage is unconfigured; CreateGrant then fails with
// ErrStorageNotConfigured.
func NewUploadService(storage storage.Storage) *UploadService {
	return &UploadService{storage: storage}
}

// CreateGrant validates the filename/content-type pair and returns an
// upload grant for a fresh object key. Keys are namespaced under
// uploads/ and prefixed with a random UUID so identically named files
// never collide; the filename itself is sanitized to stay path-safe.
func (s *UploadService) CreateGrant(ctx context.Context, filename, contentType string) (*model.UploadGrant, error) {
	filename = strings.TrimSpace(filename)
	contentType = strings.TrimSpace(contentType)
	if filename == "" || contentType == "" {
		return nil, ErrInvalidUpload
	}

	if s.storage == nil {
		return nil, ErrStorageNotConfigured
	}

	key := uploadPrefix + uuid.New().String() + "-" + validation.SanitizeFilename(filename)

	url, fields, err := s.storage.PresignedPost(ctx, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to issue upload grant: %w", err)
	}

	return &model.UploadGrant{
		UploadURL:    url,
		Fields:       fields,
		PublicGetURL: s.storage.PublicURL(key),
		FileKey:      key,
	}, nil
}
