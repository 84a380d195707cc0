package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	MongoDB struct {
		Port            string
		Host            string
		DbName          string
		Username        string
		Password        string
		UseTransactions bool
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App      App
		Minio    AppMinio
		RabbitMQ AppRabbitMQ
	}

	App struct {
		Env                         string
		Port                        string
		Version                     string
		Address                     string
		Timezone                    string
		EndpointPrefix              string
		AdminAPIKey                 string
		ProviderName                string
		ReminderWorkerCronSpec      string
		MaxRequests                 int
		ShutdownTimeoutInSeconds    int
		MaxTimeRequestsPerSeconds   int
		RequestBodyLimitInMegabyte  int
		MaxUploadSizeInMegabyte     int64
		CounterCacheTTLInSeconds    int
		AppointmentLockTTLInSeconds int
		BookingQuotaPerMinute       int
	}

	AppMinio struct {
		BucketName                    string
		PresignedUrlExpiryTimeInHours int
	}

	// AppRabbitMQ names the queue that receives appointment events.
	AppRabbitMQ struct {
		NotificationQueue string
	}
)
