package payments

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository contracts.PaymentRepository
	Storage           contracts.Storage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository: paymentRepository,
		Storage:           storage,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *paymentUsecase) Create(ctx context.Context, request *requests.CreatePayment) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, request.Patient),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return "", exceptions.ErrInputValidation(err)
	}

	payment := &models.Payment{
		Patient:   request.Patient,
		Amount:    request.Amount,
		Status:    request.Status,
		Method:    request.Method,
		Date:      utils.Today(),
		CreatedAt: time.Now(),
	}

	if request.Receipt != nil {
		receipt, err := uc.Storage.UploadFile(ctx, request.Receipt, uc.InternalConfig.Minio.BucketName, constvars.ObjectPrefixReceipts)
		if err != nil {
			uc.Log.Error("paymentUsecase.Create error calling Storage.UploadFile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return "", err
		}
		payment.Receipt = receipt
	}

	err := uc.PaymentRepository.Create(ctx, payment)
	if err != nil {
		uc.Log.Error("paymentUsecase.Create error calling PaymentRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("paymentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, payment.ID.Hex()),
	)
	return payment.ID.Hex(), nil
}

func (uc *paymentUsecase) ListAll(ctx context.Context) ([]models.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ListAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payments, err := uc.PaymentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("paymentUsecase.ListAll error calling PaymentRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("paymentUsecase.ListAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(payments)),
	)
	return payments, nil
}

func (uc *paymentUsecase) ListByPatient(ctx context.Context, patient string) ([]models.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, patient),
	)

	payments, err := uc.PaymentRepository.FindByPatient(ctx, patient)
	if err != nil {
		uc.Log.Error("paymentUsecase.ListByPatient error calling PaymentRepository.FindByPatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("paymentUsecase.ListByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(payments)),
	)
	return payments, nil
}
