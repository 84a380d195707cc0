package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(
	router chi.Router,
	profileController *controllers.ProfileController,
	messageController *controllers.MessageController,
	reportController *controllers.ReportController,
	paymentController *controllers.PaymentController,
	notificationController *controllers.NotificationController,
) {
	router.Get("/patients", profileController.ListPatients)
	router.Get("/patients/{name}", profileController.GetPatientDetail)

	router.Get("/messages", messageController.ListAll)
	router.Get("/messages/client/{name}", messageController.ListByClient)
	router.Post("/messages/reply", messageController.Reply)

	router.Post("/reports", reportController.Create)
	router.Get("/reports", reportController.ListAll)
	router.Put("/reports/{id}", reportController.Update)
	router.Delete("/reports/{id}", reportController.Delete)

	router.Post("/payments", paymentController.Create)
	router.Get("/payments", paymentController.ListAll)

	router.Get("/notifications", notificationController.AdminCounters)
}
