package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingErrorTypeKey   = "error_type"
	LoggingRedisKey       = "redis_key"
	LoggingQueueNameKey   = "queue_name"
	LoggingBucketNameKey  = "bucket_name"
	LoggingObjectNameKey  = "object_name"
	LoggingEventKey       = "event"
	LoggingCountKey       = "count"
	LoggingDataKey        = "data"
	LoggingRequestKey     = "request"
	LoggingResponseKey    = "response"
	LoggingCronSpecKey    = "cron_spec"
	LoggingTransactionKey = "transactional"

	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"

	LoggingAppointmentIDKey = "appointment_id"
	LoggingMessageIDKey     = "message_id"
	LoggingReportIDKey      = "report_id"
	LoggingReportTypeKey    = "report_type"
	LoggingPaymentIDKey     = "payment_id"
	LoggingUserIDKey        = "user_id"
	LoggingUsernameKey      = "username"
	LoggingPatientKey       = "patient"
	LoggingDateKey          = "date"
	LoggingTimeKey          = "time"
	LoggingCancelledByKey   = "cancelled_by"
)
