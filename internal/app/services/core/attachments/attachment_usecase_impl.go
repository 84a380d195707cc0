package attachments

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

type attachmentUsecase struct {
	Storage        contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAttachmentUsecase(storage contracts.Storage, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AttachmentUsecase {
	return &attachmentUsecase{
		Storage:        storage,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *attachmentUsecase) GetAttachmentURL(ctx context.Context, objectName string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("attachmentUsecase.GetAttachmentURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	objectName = strings.TrimPrefix(strings.TrimSpace(objectName), "/")
	if objectName == "" || strings.Contains(objectName, "..") {
		return "", exceptions.ErrURLParamIDValidation(errors.New("invalid object name"), constvars.URLParamObjectName)
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PresignedUrlExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("attachmentUsecase.GetAttachmentURL error calling Storage.GetObjectUrlWithExpiryTime",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("attachmentUsecase.GetAttachmentURL succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return url, nil
}
