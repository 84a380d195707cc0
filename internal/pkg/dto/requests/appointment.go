package requests

type CreateAppointment struct {
	Patient string `json:"patient" validate:"required"`
	Date    string `json:"date" validate:"required,slot_date"`
	Time    string `json:"time" validate:"required,slot_time"`
}

type RescheduleAppointment struct {
	Date string `json:"date" validate:"required,slot_date"`
	Time string `json:"time" validate:"required,slot_time"`
}

// CancelAppointment leaves Reason unvalidated here: an unknown appointment
// must surface as not found before an empty reason is reported.
type CancelAppointment struct {
	Reason      string `json:"reason"`
	CancelledBy string `json:"cancelledBy"`
}
