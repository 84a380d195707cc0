package contracts

import (
	"clinic-service/internal/app/models"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SlotRegistry interface {
	IsOccupied(ctx context.Context, date, slotTime string) (bool, error)
	Occupy(ctx context.Context, date, slotTime string, appointmentID primitive.ObjectID) (*models.OccupiedSlot, error)
	Release(ctx context.Context, appointmentID primitive.ObjectID) error
	ReleaseSlot(ctx context.Context, appointmentID primitive.ObjectID, date, slotTime string) error
	ListAvailable(ctx context.Context, date string) ([]string, error)
	// HeldSlots counts the slots reserved for appointmentID. A consistent
	// appointment holds exactly one.
	HeldSlots(ctx context.Context, appointmentID primitive.ObjectID) (int64, error)
}

type SlotRepository interface {
	// Insert must fail with exceptions.ErrSlotAlreadyOccupied when the pair is taken.
	Insert(ctx context.Context, slot *models.OccupiedSlot) error
	Exists(ctx context.Context, date, slotTime string) (bool, error)
	FindOccupiedTimes(ctx context.Context, date string) ([]string, error)
	DeleteByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (int64, error)
	DeleteOne(ctx context.Context, appointmentID primitive.ObjectID, date, slotTime string) (int64, error)
	CountByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (int64, error)
}
