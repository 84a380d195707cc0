package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"alphanum":  "must contain only alphanumeric characters",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"slot_date": "must be a valid date in YYYY-MM-DD format",
	"slot_time": "must be a full hour between 09:00 and 17:00",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid credentials"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
	ErrClientSlotAlreadyOccupied           = "the requested time is already booked"
	ErrClientAppointmentBusy               = "the appointment is being changed by another request, try again"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientCancellationReasonRequired    = "a cancellation reason is required"
	ErrClientInvalidSlot                   = "the requested date or time is not a bookable slot"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientFileTooLarge                  = "the uploaded file is too large"
	ErrClientTooManyAttachments            = "too many attachments"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevUsernameAlreadyExists    = "username already exists"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevTooManyRequests          = "client exceeded the rate limit"
	ErrDevInvalidAPIKey            = "invalid admin api key"
	ErrDevAPIKeyRequired           = "admin api key required"

	// Booking messages
	ErrDevSlotAlreadyOccupied        = "occupied slot already exists for the requested date and time"
	ErrDevAppointmentLocked          = "appointment lock is held by another request"
	ErrDevAppointmentNotFound        = "no appointment matches the given id"
	ErrDevCancellationReasonRequired = "cancellation reason is empty"
	ErrDevInvalidSlot                = "date or time outside the slot grid"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevTooManyAttachments         = "attachment count exceeds the limit"
	ErrDevFileTooLarge               = "uploaded file exceeds the size limit"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToCountDocuments   = "failed when do count documents on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on collection %s"
	ErrDevDBTransactionFailed        = "database transaction failed"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBDocumentNotFound         = "%s document not found"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevMinioFailedToCreateBucket          = "failed to create minio bucket '%s'"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisGetNoData      = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"
	ErrDevRedisExpire         = "failed to EXPIRE key in redis"
	ErrDevRedisUnlock         = "failed to release lock in redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue '%s'"
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitmq channel"

	// Calendar messages
	ErrDevCalendarEncode = "failed to encode calendar"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanic            = "recovered from panic"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
