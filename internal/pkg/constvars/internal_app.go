package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ADMIN_API_KEY_AUTH       ContextKey = "admin_api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "CLINIC_SVC_"
)

const (
	DefaultProviderName = "DraPsico"
	DefaultReportEntity = "Consultório"
)

// Slot grid: hourly, 09:00 to 17:00 inclusive.
const (
	SlotFirstHour         = 9
	SlotLastHour          = 17
	SlotDurationInMinutes = 60
	SlotDateLayout        = "2006-01-02"
	SlotTimeLayout        = "15:04"
)

const (
	MongoCollectionUsers           = "users"
	MongoCollectionPatients        = "patients"
	MongoCollectionAppointments    = "appointments"
	MongoCollectionOccupiedSlots   = "occupied_slots"
	MongoCollectionMessages        = "messages"
	MongoCollectionSessionReports  = "session_reports"
	MongoCollectionExternalReports = "external_reports"
	MongoCollectionPayments        = "payments"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

const (
	AppointmentStatusScheduled = "scheduled"
)

const (
	MessageTypeClientToAdmin = "client-to-admin"
	MessageTypeAdminToClient = "admin-to-client"
)

const (
	PatientStatusActive = "active"
)

const (
	ReportTypeNormal    = "normal"
	ReportStatusIssued  = "issued"
	ReportNewWithinDays = 7
	ReportMaxAttachment = 10
)

const (
	ObjectPrefixReports  = "reports"
	ObjectPrefixReceipts = "receipts"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusCancelled = "cancelled"
)

const (
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentReminder  = "appointment.reminder"
)

const (
	RedisKeyAppointmentLockFormat = "appointments:lock:%s"
	RedisKeyClientCountersFormat  = "counters:client:%s"
	RedisKeyAdminCounters         = "counters:admin"
	RedisKeyReminderLeader        = "reminders:leader"
	RedisKeyReminderSentFormat    = "reminders:sent:%s:%s"
)

const (
	CancellationSubjectFormat = "Appointment Cancellation - %s %s"
	CancellationTextFormat    = "The appointment scheduled for %s at %s was cancelled.\n\nReason: %s"
)

const (
	CalendarProductID     = "-//clinic-service//EN"
	CalendarSummary       = "Consultation with %s"
	CalendarFileExtension = ".ics"
	MIMETextCalendar      = "text/calendar; charset=utf-8"
)
