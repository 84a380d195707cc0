package models

import (
	"clinic-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Patient   string             `json:"patient" bson:"patient"`
	Provider  string             `json:"provider" bson:"provider"`
	Date      string             `json:"date" bson:"date"`
	Time      string             `json:"time" bson:"time"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// StartsAt resolves the appointment date and hour in the given location.
func (a Appointment) StartsAt(location *time.Location) (time.Time, error) {
	return time.ParseInLocation(constvars.SlotDateLayout+" "+constvars.SlotTimeLayout, a.Date+" "+a.Time, location)
}

func (a Appointment) HasSlot(date, slotTime string) bool {
	return a.Date == date && a.Time == slotTime
}

// OccupiedSlot is the projection that reserves a (date, time) pair for one appointment.
type OccupiedSlot struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Date          string             `json:"date" bson:"date"`
	Time          string             `json:"time" bson:"time"`
	Duration      int                `json:"duration" bson:"duration"`
	Provider      string             `json:"provider" bson:"provider"`
	Occupied      bool               `json:"occupied" bson:"occupied"`
	AppointmentID primitive.ObjectID `json:"appointmentId" bson:"appointmentId"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

type AppointmentEvent struct {
	Event         string    `json:"event"`
	AppointmentID string    `json:"appointmentId"`
	Patient       string    `json:"patient"`
	Provider      string    `json:"provider"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Reason        string    `json:"reason,omitempty"`
	CancelledBy   string    `json:"cancelledBy,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func NewAppointmentEvent(event string, appointment *Appointment) *AppointmentEvent {
	return &AppointmentEvent{
		Event:         event,
		AppointmentID: appointment.ID.Hex(),
		Patient:       appointment.Patient,
		Provider:      appointment.Provider,
		Date:          appointment.Date,
		Time:          appointment.Time,
		OccurredAt:    time.Now(),
	}
}
