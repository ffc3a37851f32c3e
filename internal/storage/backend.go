package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StoredFile is what an upload attempt yields on success.
type StoredFile struct {
	URL         string
	FileName    string
	StorageType string
}

// Backend stores one payment-proof artifact. Implementations must be
// safe for concurrent use.
type Backend interface {
	Name() string
	Store(ctx context.Context, data []byte, originalFilename string) (StoredFile, error)
}

// uniqueFilename keeps the original extension but replaces the name with
// an ascii-safe unique one.
func uniqueFilename(originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	return fmt.Sprintf("proof_%s_%d%s",
		uuid.New().String()[:8],
		time.Now().Unix(),
		ext)
}

func contentTypeByExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".pdf":
		return "application/pdf"
	}
	return "application/octet-stream"
}
