package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"context"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, file *requests.UploadedFile, bucketName, prefix string) (*models.Attachment, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
	EnsureBucket(ctx context.Context, bucketName string) (bool, error)
}

type AttachmentUsecase interface {
	GetAttachmentURL(ctx context.Context, objectName string) (string, error)
}
