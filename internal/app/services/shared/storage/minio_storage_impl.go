package storage

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		Log:         logger,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file *requests.UploadedFile, bucketName, prefix string) (*models.Attachment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectName := utils.GenerateObjectName(prefix, file.FileName)
	contentType := file.ContentType
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	info, err := m.MinioClient.PutObject(ctx, bucketName, objectName, file.Content, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		m.Log.Error("minioStorage.UploadFile error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, exceptions.ErrMinioCreateObject(err, bucketName)
	}

	m.Log.Info("minioStorage.UploadFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, bucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	return &models.Attachment{
		Name:        file.FileName,
		ObjectName:  objectName,
		ContentType: contentType,
		Size:        info.Size,
		UploadedAt:  time.Now(),
	}, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiryTime, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, bucketName)
	}
	return presignedURL.String(), nil
}

// EnsureBucket creates bucketName when missing and reports whether it did.
func (m *minioStorage) EnsureBucket(ctx context.Context, bucketName string) (bool, error) {
	exists, err := m.MinioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, exceptions.ErrMinioCreateBucket(err, bucketName)
	}
	if exists {
		return false, nil
	}

	err = m.MinioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		return false, exceptions.ErrMinioCreateBucket(err, bucketName)
	}
	return true, nil
}
