package storage

import (
	"context"
	"io"
	"time"

	"dentaldesk-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.MinioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}
	if exists {
		return nil
	}
	err = m.MinioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return nil
}

func (m *minioStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return objectName, nil
}

func (m *minioStorage) PresignedGetURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObjectURL(err, bucketName)
	}
	return presignedURL.String(), nil
}

func (m *minioStorage) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	err := m.MinioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioRemoveObject(err, bucketName)
	}
	return nil
}
