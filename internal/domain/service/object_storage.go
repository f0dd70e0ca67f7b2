package service

import (
	"context"
)

// ObjectStorage is the boundary to the S3-compatible bucket holding
// originals and renditions. Get fails with OBJECT_NOT_FOUND for missing
// keys and STORAGE_UNAVAILABLE for transient failures; neither is retried
// here.
type ObjectStorage interface {
	Get(ctx context.Context, objectName string) ([]byte, error)
	Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}
