package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"hostlane/internal/config"
)

const presignedTTL = 24 * time.Hour

// MinioBackend is the primary proof store: an S3-compatible bucket.
type MinioBackend struct {
	client *minio.Client
	bucket string
}

func NewMinioBackend(cfg config.MinioConfig) (*MinioBackend, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Infof("Bucket %s created", cfg.Bucket)
	}

	return &MinioBackend{client: client, bucket: cfg.Bucket}, nil
}

func (m *MinioBackend) Name() string { return "minio" }

func (m *MinioBackend) Store(ctx context.Context, data []byte, originalFilename string) (StoredFile, error) {
	filename := uniqueFilename(originalFilename)

	reader := bytes.NewReader(data)
	_, err := m.client.PutObject(ctx, m.bucket, filename, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentTypeByExt(originalFilename),
	})
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to upload file: %w", err)
	}

	url, err := m.client.PresignedGetObject(ctx, m.bucket, filename, presignedTTL, nil)
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	log.Infof("File %s uploaded to bucket %s", filename, m.bucket)
	return StoredFile{
		URL:         url.String(),
		FileName:    filename,
		StorageType: m.Name(),
	}, nil
}
