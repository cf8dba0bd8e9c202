package contracts

import (
	"context"
	"time"
)

type ExportStorage interface {
	PutExport(ctx context.Context, objectName, contentType string, content []byte) error
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
