package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"hostlane/internal/models/response_models"
	"hostlane/internal/storage"
	"hostlane/pkg/utils"
)

var allowedProofExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
}

type UploadServiceInterface interface {
	UploadPaymentProof(ctx context.Context, data []byte, filename string) (response_models.UploadResponse, error)
}

type UploadService struct {
	store        *storage.FallbackStore
	maxSizeBytes int64
}

func NewUploadService(store *storage.FallbackStore, maxSizeMB int64) UploadServiceInterface {
	return &UploadService{
		store:        store,
		maxSizeBytes: maxSizeMB * 1024 * 1024,
	}
}

func (u *UploadService) UploadPaymentProof(ctx context.Context, data []byte, filename string) (response_models.UploadResponse, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedProofExtensions[ext] {
		return response_models.UploadResponse{}, fmt.Errorf("%w: unsupported file type %q", utils.ErrInvalidUpload, ext)
	}
	if int64(len(data)) > u.maxSizeBytes {
		return response_models.UploadResponse{}, fmt.Errorf("%w: file exceeds maximum size of %d bytes", utils.ErrInvalidUpload, u.maxSizeBytes)
	}
	if len(data) == 0 {
		return response_models.UploadResponse{}, fmt.Errorf("%w: empty file", utils.ErrInvalidUpload)
	}

	stored, err := u.store.Store(ctx, data, filename)
	if err != nil {
		return response_models.UploadResponse{}, fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}

	return response_models.UploadResponse{
		Success:     true,
		URL:         stored.URL,
		FileName:    stored.FileName,
		StorageType: stored.StorageType,
	}, nil
}
