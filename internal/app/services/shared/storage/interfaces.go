package storage

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	EnsureBucket(ctx context.Context, bucketName string) error
	UploadObject(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, size int64) (string, error)
	PresignedGetURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
	RemoveObject(ctx context.Context, bucketName, objectName string) error
}
