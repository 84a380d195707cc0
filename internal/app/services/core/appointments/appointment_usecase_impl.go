package appointments

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SlotRegistry          contracts.SlotRegistry
	NotificationRelay     contracts.NotificationRelay
	Transactor            contracts.Transactor
	Locker                contracts.LockerService
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	slotRegistry contracts.SlotRegistry,
	notificationRelay contracts.NotificationRelay,
	transactor contracts.Transactor,
	locker contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		SlotRegistry:          slotRegistry,
		NotificationRelay:     notificationRelay,
		Transactor:            transactor,
		Locker:                locker,
		EventPublisher:        eventPublisher,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) ListAvailable(ctx context.Context, date string) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListAvailable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	if !utils.IsValidSlotDate(date) {
		uc.Log.Error("appointmentUsecase.ListAvailable invalid date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, date),
		)
		return nil, exceptions.ErrInvalidSlot(nil)
	}

	available, err := uc.SlotRegistry.ListAvailable(ctx, date)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListAvailable error calling SlotRegistry.ListAvailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.ListAvailable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(available)),
	)
	return available, nil
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, request.Patient),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time),
	)

	if err := uc.validateSlot(request.Date, request.Time); err != nil {
		uc.Log.Error("appointmentUsecase.Create invalid slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("appointmentUsecase.Create invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrInputValidation(err)
	}

	appointment := &models.Appointment{
		ID:        primitive.NewObjectID(),
		Patient:   strings.TrimSpace(request.Patient),
		Provider:  uc.InternalConfig.App.ProviderName,
		Date:      request.Date,
		Time:      request.Time,
		Status:    constvars.AppointmentStatusScheduled,
		CreatedAt: time.Now(),
	}

	slotClaimed := false
	err := uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		_, err := uc.SlotRegistry.Occupy(txCtx, appointment.Date, appointment.Time, appointment.ID)
		if err != nil {
			return err
		}
		slotClaimed = true

		return uc.AppointmentRepository.Create(txCtx, appointment)
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error booking appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.Error(err),
		)
		if slotClaimed {
			uc.releaseOrphanSlot(ctx, appointment.ID)
		}
		return "", err
	}

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
	)
	return appointment.ID.Hex(), nil
}

func (uc *appointmentUsecase) Reschedule(ctx context.Context, appointmentID string, request *requests.RescheduleAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Reschedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time),
	)

	if err := uc.validateSlot(request.Date, request.Time); err != nil {
		uc.Log.Error("appointmentUsecase.Reschedule invalid slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrAppointmentNotFound(err)
	}

	unlock, err := uc.lockAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	defer unlock()

	appointment, err := uc.findAppointment(ctx, objectID)
	if err != nil {
		return err
	}

	if appointment.HasSlot(request.Date, request.Time) {
		uc.Log.Info("appointmentUsecase.Reschedule slot unchanged",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil
	}

	newSlotClaimed, appointmentMoved := false, false
	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		_, err := uc.SlotRegistry.Occupy(txCtx, request.Date, request.Time, objectID)
		if err != nil {
			return err
		}
		newSlotClaimed = true

		err = uc.AppointmentRepository.UpdateSlot(txCtx, objectID, request.Date, request.Time)
		if err != nil {
			return err
		}
		appointmentMoved = true

		return uc.SlotRegistry.ReleaseSlot(txCtx, objectID, appointment.Date, appointment.Time)
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Reschedule error moving appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		if newSlotClaimed && !appointmentMoved {
			uc.releaseNewSlot(ctx, objectID, request.Date, request.Time)
		}
		if appointmentMoved && uc.releaseOldSlot(ctx, objectID, appointment, request) {
			uc.Log.Info("appointmentUsecase.Reschedule succeeded after releasing previous slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			)
			return nil
		}
		return err
	}

	uc.Log.Info("appointmentUsecase.Reschedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*models.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingCancelledByKey, request.CancelledBy),
	)

	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrAppointmentNotFound(err)
	}

	unlock, err := uc.lockAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	appointment, err := uc.findAppointment(ctx, objectID)
	if err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(request.Reason)
	if reason == "" {
		uc.Log.Error("appointmentUsecase.Cancel empty cancellation reason",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil, exceptions.ErrCancellationReasonRequired(nil)
	}

	var message *models.Message
	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		err := uc.AppointmentRepository.DeleteByID(txCtx, objectID)
		if err != nil {
			return err
		}

		err = uc.SlotRegistry.Release(txCtx, objectID)
		if err != nil {
			return err
		}

		message, err = uc.NotificationRelay.NotifyCancellation(txCtx, appointment, reason, request.CancelledBy)
		return err
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Cancel error cancelling appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	event := models.NewAppointmentEvent(constvars.EventAppointmentCancelled, appointment)
	event.Reason = reason
	event.CancelledBy = request.CancelledBy
	uc.publishEvent(ctx, event)

	uc.Log.Info("appointmentUsecase.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingMessageIDKey, message.ID.Hex()),
	)
	return message, nil
}

func (uc *appointmentUsecase) FindByPatient(ctx context.Context, patient string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, patient),
	)

	appointments, err := uc.AppointmentRepository.FindByPatient(ctx, patient)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByPatient error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.FindByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, nil
}

func (uc *appointmentUsecase) ExportCalendar(ctx context.Context, patient string) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ExportCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, patient),
	)

	appointments, err := uc.AppointmentRepository.FindByPatient(ctx, patient)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ExportCalendar error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if len(appointments) == 0 {
		return nil, exceptions.ErrDocumentNotFound(nil, "appointments")
	}

	calendar, err := encodeCalendar(appointments, uc.location())
	if err != nil {
		uc.Log.Error("appointmentUsecase.ExportCalendar error encoding calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.ExportCalendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return calendar, nil
}

func (uc *appointmentUsecase) validateSlot(date, slotTime string) error {
	if !utils.IsValidSlotDate(date) || !utils.IsValidSlotTime(slotTime) {
		return exceptions.ErrInvalidSlot(fmt.Errorf("date %q time %q", date, slotTime))
	}
	return nil
}

func (uc *appointmentUsecase) findAppointment(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

// lockAppointment serializes edits of one appointment across instances. The
// returned func releases the lock.
func (uc *appointmentUsecase) lockAppointment(ctx context.Context, appointmentID string) (func(), error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	lockKey := fmt.Sprintf(constvars.RedisKeyAppointmentLockFormat, appointmentID)
	lockTTL := time.Duration(uc.InternalConfig.App.AppointmentLockTTLInSeconds) * time.Second

	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		uc.Log.Error("appointmentUsecase.lockAppointment error acquiring lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrAppointmentLocked(nil)
	}

	return func() {
		if err := uc.Locker.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("appointmentUsecase.lockAppointment error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}, nil
}

// releaseOrphanSlot drops a slot claimed by a booking whose appointment was
// never written. Without transactions nothing else would free it.
func (uc *appointmentUsecase) releaseOrphanSlot(ctx context.Context, appointmentID primitive.ObjectID) {
	err := uc.SlotRegistry.Release(context.WithoutCancel(ctx), appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.releaseOrphanSlot error releasing slot",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) releaseNewSlot(ctx context.Context, appointmentID primitive.ObjectID, date, slotTime string) {
	err := uc.SlotRegistry.ReleaseSlot(context.WithoutCancel(ctx), appointmentID, date, slotTime)
	if err != nil {
		uc.Log.Error("appointmentUsecase.releaseNewSlot error releasing slot",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
			zap.Error(err),
		)
	}
}

// releaseOldSlot finishes a move that was persisted without a transaction
// but failed to free the previous slot. It reports whether the appointment
// now holds exactly its new slot.
func (uc *appointmentUsecase) releaseOldSlot(ctx context.Context, appointmentID primitive.ObjectID, previous *models.Appointment, request *requests.RescheduleAppointment) bool {
	ctx = context.WithoutCancel(ctx)

	stored, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil || stored == nil || !stored.HasSlot(request.Date, request.Time) {
		return false
	}

	err = uc.SlotRegistry.ReleaseSlot(ctx, appointmentID, previous.Date, previous.Time)
	if err != nil {
		uc.Log.Error("appointmentUsecase.releaseOldSlot error releasing previous slot",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
			zap.String(constvars.LoggingDateKey, previous.Date),
			zap.String(constvars.LoggingTimeKey, previous.Time),
			zap.Error(err),
		)
		return false
	}

	held, err := uc.SlotRegistry.HeldSlots(ctx, appointmentID)
	if err != nil || held != 1 {
		uc.Log.Error("appointmentUsecase.releaseOldSlot appointment does not hold exactly one slot",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
			zap.Int64(constvars.LoggingCountKey, held),
			zap.Error(err),
		)
		return false
	}
	return true
}

// publishEvent is best effort: the cancellation is already committed.
func (uc *appointmentUsecase) publishEvent(ctx context.Context, event *models.AppointmentEvent) {
	if uc.EventPublisher == nil {
		return
	}
	err := uc.EventPublisher.PublishAppointmentEvent(ctx, event)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publishEvent error publishing event",
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) location() *time.Location {
	location, err := time.LoadLocation(uc.InternalConfig.App.Timezone)
	if err != nil {
		return time.Local
	}
	return location
}
