package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// LocalBackend writes proofs to local disk. It is the fallback for when
// the object store is unreachable, so it depends on nothing remote.
type LocalBackend struct {
	dir     string
	baseURL string
}

func NewLocalBackend(dir string, baseURL string) (*LocalBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalBackend{dir: dir, baseURL: baseURL}, nil
}

func (l *LocalBackend) Name() string { return "local" }

func (l *LocalBackend) Store(ctx context.Context, data []byte, originalFilename string) (StoredFile, error) {
	filename := uniqueFilename(originalFilename)

	path := filepath.Join(l.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return StoredFile{}, fmt.Errorf("failed to write file: %w", err)
	}

	log.Infof("File %s stored on local disk", filename)
	return StoredFile{
		URL:         l.baseURL + "/" + filename,
		FileName:    filename,
		StorageType: l.Name(),
	}, nil
}
