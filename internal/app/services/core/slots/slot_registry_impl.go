package slots

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type slotRegistry struct {
	SlotRepository contracts.SlotRepository
	ProviderName   string
	Log            *zap.Logger
}

func NewSlotRegistry(slotRepository contracts.SlotRepository, providerName string, logger *zap.Logger) contracts.SlotRegistry {
	return &slotRegistry{
		SlotRepository: slotRepository,
		ProviderName:   providerName,
		Log:            logger,
	}
}

func (r *slotRegistry) IsOccupied(ctx context.Context, date, slotTime string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	occupied, err := r.SlotRepository.Exists(ctx, date, slotTime)
	if err != nil {
		r.Log.Error("slotRegistry.IsOccupied error checking slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, date),
			zap.String(constvars.LoggingTimeKey, slotTime),
			zap.Error(err),
		)
		return false, err
	}
	return occupied, nil
}

func (r *slotRegistry) Occupy(ctx context.Context, date, slotTime string, appointmentID primitive.ObjectID) (*models.OccupiedSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("slotRegistry.Occupy called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
		zap.String(constvars.LoggingDateKey, date),
		zap.String(constvars.LoggingTimeKey, slotTime),
	)

	slot := &models.OccupiedSlot{
		Date:          date,
		Time:          slotTime,
		Duration:      constvars.SlotDurationInMinutes,
		Provider:      r.ProviderName,
		Occupied:      true,
		AppointmentID: appointmentID,
		CreatedAt:     time.Now(),
	}

	err := r.SlotRepository.Insert(ctx, slot)
	if err != nil {
		r.Log.Error("slotRegistry.Occupy error inserting occupied slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}

	r.Log.Info("slotRegistry.Occupy succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
	)
	return slot, nil
}

func (r *slotRegistry) Release(ctx context.Context, appointmentID primitive.ObjectID) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	released, err := r.SlotRepository.DeleteByAppointmentID(ctx, appointmentID)
	if err != nil {
		r.Log.Error("slotRegistry.Release error deleting occupied slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
			zap.Error(err),
		)
		return err
	}

	r.Log.Info("slotRegistry.Release succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
		zap.Int64(constvars.LoggingCountKey, released),
	)
	return nil
}

func (r *slotRegistry) ReleaseSlot(ctx context.Context, appointmentID primitive.ObjectID, date, slotTime string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	released, err := r.SlotRepository.DeleteOne(ctx, appointmentID, date, slotTime)
	if err != nil {
		r.Log.Error("slotRegistry.ReleaseSlot error deleting occupied slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
			zap.Error(err),
		)
		return err
	}

	r.Log.Info("slotRegistry.ReleaseSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
		zap.String(constvars.LoggingDateKey, date),
		zap.String(constvars.LoggingTimeKey, slotTime),
		zap.Int64(constvars.LoggingCountKey, released),
	)
	return nil
}

// ListAvailable returns the candidate hours of date that no occupied slot
// holds, in ascending order.
func (r *slotRegistry) ListAvailable(ctx context.Context, date string) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	occupiedTimes, err := r.SlotRepository.FindOccupiedTimes(ctx, date)
	if err != nil {
		r.Log.Error("slotRegistry.ListAvailable error fetching occupied times",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
		return nil, err
	}

	occupied := make(map[string]struct{}, len(occupiedTimes))
	for _, slotTime := range occupiedTimes {
		occupied[slotTime] = struct{}{}
	}

	available := make([]string, 0, len(utils.CandidateSlots()))
	for _, candidate := range utils.CandidateSlots() {
		if _, taken := occupied[candidate]; !taken {
			available = append(available, candidate)
		}
	}
	return available, nil
}

func (r *slotRegistry) HeldSlots(ctx context.Context, appointmentID primitive.ObjectID) (int64, error) {
	held, err := r.SlotRepository.CountByAppointmentID(ctx, appointmentID)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		r.Log.Error("slotRegistry.HeldSlots error counting slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID.Hex()),
			zap.Error(err),
		)
		return 0, err
	}
	return held, nil
}
