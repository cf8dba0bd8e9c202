package storage

import (
	"bytes"
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioExportStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioExportStorage(minioClient *minio.Client, bucketName string) contracts.ExportStorage {
	return &minioExportStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioExportStorage) PutExport(ctx context.Context, objectName, contentType string, content []byte) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return exceptions.ErrMinioPutObject(err, objectName)
	}
	return nil
}

func (m *minioExportStorage) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, objectName)
	}
	return presignedURL.String(), nil
}
