package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	RegisterSuccessMessage = "account created successfully"
	LoginSuccessMessage    = "successfully login"

	GetProfileSuccessMessage    = "get profile successfully"
	UpdateProfileSuccessMessage = "profile updated successfully"
	DeleteProfileSuccessMessage = "account deleted successfully"

	GetAvailabilitySuccessMessage       = "get availability successfully"
	CreateAppointmentSuccessMessage     = "appointment created successfully"
	RescheduleAppointmentSuccessMessage = "appointment updated successfully"
	CancelAppointmentSuccessMessage     = "appointment cancelled successfully"
	GetAppointmentsSuccessMessage       = "get appointments successfully"

	SendMessageSuccessMessage     = "message sent successfully"
	ReplyMessageSuccessMessage    = "reply sent successfully"
	GetMessagesSuccessMessage     = "get messages successfully"
	EditMessageSuccessMessage     = "message edited successfully"
	DeleteMessageSuccessMessage   = "message deleted successfully"
	MarkMessageReadSuccessMessage = "message marked as read"

	GetPatientsSuccessMessage      = "get patients successfully"
	GetPatientDetailSuccessMessage = "get patient detail successfully"

	CreateReportSuccessMessage = "report created successfully"
	GetReportsSuccessMessage   = "get reports successfully"
	UpdateReportSuccessMessage = "report updated successfully"
	DeleteReportSuccessMessage = "report deleted successfully"

	CreatePaymentSuccessMessage = "payment registered successfully"
	GetPaymentsSuccessMessage   = "get payments successfully"

	GetCountersSuccessMessage      = "get notifications successfully"
	GetAttachmentURLSuccessMessage = "get attachment url successfully"
)
