package routers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

const (
	authRateLimiterBlockTime = time.Minute
	bookingQuotaGroup        = "booking"
	bookingQuotaWindowSec    = 60
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	messageController *controllers.MessageController,
	reportController *controllers.ReportController,
	paymentController *controllers.PaymentController,
	notificationController *controllers.NotificationController,
	attachmentController *controllers.AttachmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID", "x-api-key"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(mw.ErrorHandler)
	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	authRateLimiter := middlewares.NewRateLimiter(
		internalConfig.App.MaxTimeRequestsPerSeconds,
		time.Second,
		authRateLimiterBlockTime,
		mw.Log,
	)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/availability", func(r chi.Router) {
				attachAvailabilityRoutes(r, appointmentController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, mw, internalConfig, appointmentController)
			})

			r.Route("/auth", func(r chi.Router) {
				r.Use(authRateLimiter.Limit)
				attachAuthRoutes(r, authController)
			})

			r.Route("/profiles", func(r chi.Router) {
				attachProfileRoutes(r, profileController)
			})

			r.Route("/messages", func(r chi.Router) {
				attachMessageRoutes(r, messageController)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, reportController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, paymentController)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, notificationController)
			})

			r.Route("/attachments", func(r chi.Router) {
				attachAttachmentRoutes(r, attachmentController)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(mw.RequireAdminAPIKey)
				attachAdminRoutes(r,
					profileController,
					messageController,
					reportController,
					paymentController,
					notificationController,
				)
			})
		})
	})
}
