// internal/storage/s3/s3.go
package s3

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ImageStorage stores ad images in an S3-compatible (MinIO) bucket.
type ImageStorage struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

func NewImageStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool, logger *zap.Logger) (*ImageStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", endpoint, err)
	}

	// Create bucket if it doesn't exist.
	err = client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := client.BucketExists(context.Background(), bucket)
		if errBucketExists != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: %w", bucket, err)
		}
	}

	return &ImageStorage{
		client: client,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Upload stores image data under a fresh object key, keeping the original
// file extension, and returns the public URL.
func (s *ImageStorage) Upload(ctx context.Context, originalFileName, contentType string, data []byte) (string, error) {
	ext := filepath.Ext(originalFileName)
	objectKey := fmt.Sprintf("ads/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		s.logger.Error("image upload failed",
			zap.String("bucket", s.bucket),
			zap.String("object_key", objectKey),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to upload image %s: %w", objectKey, err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey)
	s.logger.Info("image uploaded",
		zap.String("object_key", objectKey),
		zap.Int("size", len(data)),
	)
	return url, nil
}

// Delete removes a stored image by object key.
func (s *ImageStorage) Delete(ctx context.Context, objectKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", objectKey, err)
	}
	return nil
}
