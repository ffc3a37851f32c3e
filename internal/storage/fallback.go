package storage

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// FallbackStore tries an ordered list of backends; the first success
// short-circuits. A combined error surfaces only when every backend
// fails.
type FallbackStore struct {
	backends []Backend
}

func NewFallbackStore(backends ...Backend) *FallbackStore {
	return &FallbackStore{backends: backends}
}

func (f *FallbackStore) Store(ctx context.Context, data []byte, originalFilename string) (StoredFile, error) {
	if len(f.backends) == 0 {
		return StoredFile{}, errors.New("no storage backends configured")
	}

	var failures error
	for _, backend := range f.backends {
		stored, err := backend.Store(ctx, data, originalFilename)
		if err == nil {
			return stored, nil
		}
		log.Errorf("storage backend %s failed: %v", backend.Name(), err)
		if failures == nil {
			failures = fmt.Errorf("%s: %w", backend.Name(), err)
		} else {
			failures = fmt.Errorf("%v; %s: %w", failures, backend.Name(), err)
		}
	}

	return StoredFile{}, fmt.Errorf("all storage backends failed: %w", failures)
}
