package reports

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type reportUsecase struct {
	NormalReportRepository   contracts.ReportRepository
	ExternalReportRepository contracts.ReportRepository
	Storage                  contracts.Storage
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
}

func NewReportUsecase(
	normalReportRepository contracts.ReportRepository,
	externalReportRepository contracts.ReportRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReportUsecase {
	return &reportUsecase{
		NormalReportRepository:   normalReportRepository,
		ExternalReportRepository: externalReportRepository,
		Storage:                  storage,
		InternalConfig:           internalConfig,
		Log:                      logger,
	}
}

func (uc *reportUsecase) Create(ctx context.Context, request *requests.CreateReport) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, request.Patient),
		zap.String(constvars.LoggingReportTypeKey, request.Type),
	)

	if len(request.Attachments) > constvars.ReportMaxAttachment {
		return "", exceptions.ErrTooManyAttachments(fmt.Errorf("got %d attachments", len(request.Attachments)))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return "", exceptions.ErrInputValidation(err)
	}

	attachments := make([]models.Attachment, 0, len(request.Attachments))
	for _, file := range request.Attachments {
		// TODO: remove objects already uploaded when a later upload or the insert fails.
		attachment, err := uc.Storage.UploadFile(ctx, file, uc.InternalConfig.Minio.BucketName, constvars.ObjectPrefixReports)
		if err != nil {
			uc.Log.Error("reportUsecase.Create error calling Storage.UploadFile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return "", err
		}
		attachments = append(attachments, *attachment)
	}

	entity := strings.TrimSpace(request.Entity)
	if entity == "" {
		entity = constvars.DefaultReportEntity
	}

	report := &models.Report{
		Patient:     request.Patient,
		Type:        request.Type,
		Entity:      entity,
		Content:     request.Content,
		Attachments: attachments,
		Date:        utils.Today(),
		Status:      constvars.ReportStatusIssued,
		CreatedAt:   time.Now(),
	}

	err := uc.repositoryFor(report.Type).Create(ctx, report)
	if err != nil {
		uc.Log.Error("reportUsecase.Create error calling ReportRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("reportUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, report.ID.Hex()),
		zap.Int(constvars.LoggingCountKey, len(attachments)),
	)
	return report.ID.Hex(), nil
}

func (uc *reportUsecase) ListAll(ctx context.Context) (*responses.Reports, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.ListAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	normal, err := uc.NormalReportRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	external, err := uc.ExternalReportRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("reportUsecase.ListAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(normal)+len(external)),
	)
	return &responses.Reports{Normal: normal, External: external}, nil
}

func (uc *reportUsecase) ListByPatient(ctx context.Context, patient string) (*responses.Reports, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, patient),
	)

	normal, err := uc.NormalReportRepository.FindByPatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	external, err := uc.ExternalReportRepository.FindByPatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("reportUsecase.ListByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(normal)+len(external)),
	)
	return &responses.Reports{Normal: normal, External: external}, nil
}

func (uc *reportUsecase) Update(ctx context.Context, reportID string, request *requests.UpdateReport) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	entity := strings.TrimSpace(request.Entity)
	if entity == "" {
		entity = constvars.DefaultReportEntity
	}

	err = uc.repositoryFor(request.Type).Update(ctx, objectID, request.Type, request.Content, entity)
	if err != nil {
		uc.Log.Error("reportUsecase.Update error calling ReportRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("reportUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *reportUsecase) Delete(ctx context.Context, reportID, reportType string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
		zap.String(constvars.LoggingReportTypeKey, reportType),
	)

	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	err = uc.repositoryFor(reportType).DeleteByID(ctx, objectID)
	if err != nil {
		uc.Log.Error("reportUsecase.Delete error calling ReportRepository.DeleteByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("reportUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *reportUsecase) repositoryFor(reportType string) contracts.ReportRepository {
	if reportType == constvars.ReportTypeNormal {
		return uc.NormalReportRepository
	}
	return uc.ExternalReportRepository
}
