package config

import (
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:            utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:            utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:          utils.GetEnvString("MONGODB_DB_NAME", "clinic"),
			Username:        utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password:        utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			UseTransactions: utils.GetEnvBool("MONGODB_USE_TRANSACTIONS", true),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                         utils.GetEnvString("APP_ENV", "development"),
			Port:                        utils.GetEnvString("APP_PORT", "8080"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1"),
			Address:                     utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                    utils.GetEnvString("APP_TIMEZONE", "Europe/Lisbon"),
			EndpointPrefix:              utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AdminAPIKey:                 utils.GetEnvString("APP_ADMIN_API_KEY", ""),
			ProviderName:                utils.GetEnvString("APP_PROVIDER_NAME", constvars.DefaultProviderName),
			ReminderWorkerCronSpec:      utils.GetEnvString("APP_REMINDER_WORKER_CRON_SPEC", "0 18 * * *"),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:   utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 5),
			RequestBodyLimitInMegabyte:  utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			MaxUploadSizeInMegabyte:     utils.GetEnvInt64("APP_MAX_UPLOAD_SIZE_IN_MEGABYTE", 50),
			CounterCacheTTLInSeconds:    utils.GetEnvInt("APP_COUNTER_CACHE_TTL_IN_SECONDS", 30),
			AppointmentLockTTLInSeconds: utils.GetEnvInt("APP_APPOINTMENT_LOCK_TTL_IN_SECONDS", 10),
			BookingQuotaPerMinute:       utils.GetEnvInt("APP_BOOKING_QUOTA_PER_MINUTE", 30),
		},
		Minio: AppMinio{
			BucketName:                    utils.GetEnvString("MINIO_BUCKET_NAME", "clinic-attachments"),
			PresignedUrlExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRESIGNED_URL_EXPIRY_IN_HOURS", 1),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "clinic.notifications"),
		},
	}
}
