package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/leadradar/leadradar-api/internal/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client archives generated exports to an object-store bucket. Archival is
// optional; a nil *Client disables it.
type Client struct {
	minio  *minioSDK.Client
	bucket string
}

// NewFromConfig connects to the configured MinIO endpoint and makes sure the
// export bucket exists. Returns (nil, nil) when no endpoint is configured.
func NewFromConfig() (*Client, error) {
	if config.MinioEndpoint == "" {
		return nil, nil
	}

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		log.Printf("Bucket created: %s", config.MinioBucket)
	}

	return &Client{minio: minioClient, bucket: config.MinioBucket}, nil
}

// PutExport stores one generated export file.
func (c *Client) PutExport(ctx context.Context, filename string, data []byte, contentType string) error {
	if c == nil {
		return nil
	}
	_, err := c.minio.PutObject(ctx, c.bucket, filename, bytes.NewReader(data), int64(len(data)),
		minioSDK.PutObjectOptions{ContentType: contentType})
	return err
}
