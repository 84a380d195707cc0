package counters

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type counterUsecase struct {
	MessageRepository        contracts.MessageRepository
	NormalReportRepository   contracts.ReportRepository
	ExternalReportRepository contracts.ReportRepository
	PaymentRepository        contracts.PaymentRepository
	AppointmentRepository    contracts.AppointmentRepository
	RedisRepository          contracts.RedisRepository
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
}

func NewCounterUsecase(
	messageRepository contracts.MessageRepository,
	normalReportRepository contracts.ReportRepository,
	externalReportRepository contracts.ReportRepository,
	paymentRepository contracts.PaymentRepository,
	appointmentRepository contracts.AppointmentRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CounterUsecase {
	return &counterUsecase{
		MessageRepository:        messageRepository,
		NormalReportRepository:   normalReportRepository,
		ExternalReportRepository: externalReportRepository,
		PaymentRepository:        paymentRepository,
		AppointmentRepository:    appointmentRepository,
		RedisRepository:          redisRepository,
		InternalConfig:           internalConfig,
		Log:                      logger,
	}
}

func (uc *counterUsecase) ClientCounters(ctx context.Context, name string) (*responses.ClientCounters, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("counterUsecase.ClientCounters called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, name),
	)

	cacheKey := fmt.Sprintf(constvars.RedisKeyClientCountersFormat, name)
	counters := new(responses.ClientCounters)
	if uc.readCache(ctx, cacheKey, counters) {
		return counters, nil
	}

	messages, err := uc.MessageRepository.CountUnread(ctx, name, constvars.MessageTypeAdminToClient)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -constvars.ReportNewWithinDays)
	normalReports, err := uc.NormalReportRepository.CountCreatedSince(ctx, name, since)
	if err != nil {
		return nil, err
	}
	externalReports, err := uc.ExternalReportRepository.CountCreatedSince(ctx, name, since)
	if err != nil {
		return nil, err
	}

	payments, err := uc.PaymentRepository.CountByStatus(ctx, name, constvars.PaymentStatusPending)
	if err != nil {
		return nil, err
	}

	counters = &responses.ClientCounters{
		Messages: messages,
		Reports:  normalReports + externalReports,
		Payments: payments,
	}
	uc.writeCache(ctx, cacheKey, counters)

	uc.Log.Info("counterUsecase.ClientCounters succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return counters, nil
}

func (uc *counterUsecase) AdminCounters(ctx context.Context) (*responses.AdminCounters, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("counterUsecase.AdminCounters called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	counters := new(responses.AdminCounters)
	if uc.readCache(ctx, constvars.RedisKeyAdminCounters, counters) {
		return counters, nil
	}

	messages, err := uc.MessageRepository.CountUnread(ctx, "", constvars.MessageTypeClientToAdmin)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.CountByDateAndStatus(ctx, utils.Today(), constvars.AppointmentStatusScheduled)
	if err != nil {
		return nil, err
	}

	payments, err := uc.PaymentRepository.CountByStatus(ctx, "", constvars.PaymentStatusPending)
	if err != nil {
		return nil, err
	}

	counters = &responses.AdminCounters{
		Messages:     messages,
		Appointments: appointments,
		Payments:     payments,
	}
	uc.writeCache(ctx, constvars.RedisKeyAdminCounters, counters)

	uc.Log.Info("counterUsecase.AdminCounters succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return counters, nil
}

// readCache reports whether target was filled from Redis. Cache failures
// fall through to the database.
func (uc *counterUsecase) readCache(ctx context.Context, key string, target interface{}) bool {
	cached, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("counterUsecase.readCache error reading cache",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false
	}
	if cached == "" {
		return false
	}
	if err := json.Unmarshal([]byte(cached), target); err != nil {
		uc.Log.Warn("counterUsecase.readCache error decoding cache",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (uc *counterUsecase) writeCache(ctx context.Context, key string, value interface{}) {
	ttl := time.Duration(uc.InternalConfig.App.CounterCacheTTLInSeconds) * time.Second
	if ttl <= 0 {
		return
	}
	if err := uc.RedisRepository.Set(ctx, key, value, ttl); err != nil {
		uc.Log.Warn("counterUsecase.writeCache error writing cache",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}
