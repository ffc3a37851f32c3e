package storage_fx

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"hostlane/internal/config"
	"hostlane/internal/services"
	"hostlane/internal/storage"
)

var Module = fx.Provide(
	provideFallbackStore, provideUploadService)

// The object store goes first; local disk catches uploads when it is
// down. A missing or broken minio config degrades to local-only instead
// of failing startup.
func provideFallbackStore(cfg *config.Config) (*storage.FallbackStore, error) {
	localURL := fmt.Sprintf("http://%s:%d/uploads", cfg.ServiceHost, cfg.ServicePort)
	local, err := storage.NewLocalBackend(cfg.Upload.Dir, localURL)
	if err != nil {
		return nil, err
	}

	var backends []storage.Backend
	if cfg.Minio.Endpoint != "" {
		minioBackend, err := storage.NewMinioBackend(cfg.Minio)
		if err != nil {
			log.Errorf("object storage unavailable, using local disk only: %v", err)
		} else {
			backends = append(backends, minioBackend)
		}
	}
	backends = append(backends, local)

	return storage.NewFallbackStore(backends...), nil
}

func provideUploadService(store *storage.FallbackStore, cfg *config.Config) services.UploadServiceInterface {
	return services.NewUploadService(store, cfg.Upload.MaxSizeMB)
}
