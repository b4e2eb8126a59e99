package services

import (
	"context"
	"path"
	"strings"

	"messenger-backend/internal/storage"
	messenger_errors "messenger-backend/pkg/errors"

	"github.com/google/uuid"
)

type UploadService struct {
	storage *storage.Client
}

func NewUploadService(client *storage.Client) *UploadService {
	return &UploadService{storage: client}
}

type PresignInput struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Kind        string // "avatar" or "attachment"
}

type PresignResult struct {
	UploadURL string            `json:"upload_url"`
	FileURL   string            `json:"file_url"`
	Headers   map[string]string `json:"headers"`
}

// Presign issues a short-lived PUT URL for a new object. Object keys are
// random so file names never collide or leak user input into the bucket.
func (s *UploadService) Presign(ctx context.Context, in PresignInput) (PresignResult, error) {
	if s.storage == nil {
		return PresignResult{}, messenger_errors.ErrServiceUnavailable
	}
	if in.FileName == "" || in.ContentType == "" {
		return PresignResult{}, messenger_errors.ErrInvalidInput
	}

	prefix := "attachments"
	if in.Kind == "avatar" {
		prefix = "avatars"
	}
	key := prefix + "/" + uuid.New().String() + strings.ToLower(path.Ext(in.FileName))

	uploadURL, headers, err := s.storage.PresignPut(ctx, key, in.ContentType, in.SizeBytes)
	if err != nil {
		return PresignResult{}, err
	}

	return PresignResult{
		UploadURL: uploadURL,
		FileURL:   s.storage.FileURL(key),
		Headers:   headers,
	}, nil
}
