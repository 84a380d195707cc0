package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/delivery/http/routers"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/app/drivers/messaging"
	"clinic-service/internal/app/drivers/storage"
	"clinic-service/internal/app/services/core/appointments"
	"clinic-service/internal/app/services/core/attachments"
	"clinic-service/internal/app/services/core/auth"
	"clinic-service/internal/app/services/core/counters"
	"clinic-service/internal/app/services/core/messages"
	"clinic-service/internal/app/services/core/notifications"
	"clinic-service/internal/app/services/core/patients"
	"clinic-service/internal/app/services/core/payments"
	"clinic-service/internal/app/services/core/reminders"
	"clinic-service/internal/app/services/core/reports"
	"clinic-service/internal/app/services/core/slots"
	"clinic-service/internal/app/services/core/users"
	"clinic-service/internal/app/services/shared/locker"
	sharedMessaging "clinic-service/internal/app/services/shared/messaging"
	"clinic-service/internal/app/services/shared/ratelimiter"
	"clinic-service/internal/app/services/shared/redis"
	sharedStorage "clinic-service/internal/app/services/shared/storage"
	"clinic-service/internal/pkg/constvars"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	appCtx, cancelApp := context.WithCancel(context.Background())
	defer cancelApp()

	err = bootstrapingTheApp(appCtx, bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	cancelApp()
	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	log := bootstrap.Logger

	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	indexes, err := database.EnsureIndexes(indexCtx, bootstrap.MongoDB.Database(dbName))
	if err != nil {
		return err
	}
	log.Info("Mongo indexes ensured", zap.Strings("indexes", indexes))

	transactor := database.NewMongoTransactor(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.UseTransactions)

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio, log)
	eventPublisher, err := sharedMessaging.NewEventPublisher(bootstrap.RabbitMQ, log, bootstrap.InternalConfig.RabbitMQ.NotificationQueue)
	if err != nil {
		return err
	}

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	slotMongoRepository := slots.NewSlotMongoRepository(bootstrap.MongoDB, dbName)
	messageMongoRepository := messages.NewMessageMongoRepository(bootstrap.MongoDB, dbName)
	sessionReportRepository := reports.NewReportMongoRepository(bootstrap.MongoDB, dbName, constvars.MongoCollectionSessionReports)
	externalReportRepository := reports.NewReportMongoRepository(bootstrap.MongoDB, dbName, constvars.MongoCollectionExternalReports)
	paymentMongoRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)

	// Booking
	providerName := bootstrap.InternalConfig.App.ProviderName
	slotRegistry := slots.NewSlotRegistry(slotMongoRepository, providerName, log)
	notificationRelay := notifications.NewNotificationRelay(messageMongoRepository, providerName, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		slotRegistry,
		notificationRelay,
		transactor,
		lockerService,
		eventPublisher,
		bootstrap.InternalConfig,
		log,
	)

	// Clinic records
	authUsecase := auth.NewAuthUsecase(userMongoRepository, patientMongoRepository, transactor, log)
	patientUsecase := patients.NewPatientUsecase(userMongoRepository, patientMongoRepository, appointmentMongoRepository, transactor, log)
	messageUsecase := messages.NewMessageUsecase(messageMongoRepository, providerName, log)
	reportUsecase := reports.NewReportUsecase(sessionReportRepository, externalReportRepository, minioStorage, bootstrap.InternalConfig, log)
	paymentUsecase := payments.NewPaymentUsecase(paymentMongoRepository, minioStorage, bootstrap.InternalConfig, log)
	attachmentUsecase := attachments.NewAttachmentUsecase(minioStorage, bootstrap.InternalConfig, log)
	counterUsecase := counters.NewCounterUsecase(
		messageMongoRepository,
		sessionReportRepository,
		externalReportRepository,
		paymentMongoRepository,
		appointmentMongoRepository,
		redisRepository,
		bootstrap.InternalConfig,
		log,
	)

	// Reminder worker
	reminderWorker := reminders.NewWorker(log, bootstrap.InternalConfig, lockerService, redisRepository, appointmentMongoRepository, eventPublisher)
	reminderWorker.Start(ctx)
	bootstrap.WorkerStop = reminderWorker.Stop

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, bootstrap.InternalConfig, resourceLimiter)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		controllers.NewAppointmentController(log, appointmentUsecase),
		controllers.NewAuthController(log, authUsecase),
		controllers.NewProfileController(log, patientUsecase),
		controllers.NewMessageController(log, messageUsecase),
		controllers.NewReportController(log, reportUsecase, bootstrap.InternalConfig),
		controllers.NewPaymentController(log, paymentUsecase, bootstrap.InternalConfig),
		controllers.NewNotificationController(log, counterUsecase),
		controllers.NewAttachmentController(log, attachmentUsecase),
	)
	return nil
}
