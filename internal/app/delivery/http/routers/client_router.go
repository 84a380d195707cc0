package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, profileController *controllers.ProfileController) {
	router.Get("/{userId}", profileController.GetProfile)
	router.Put("/{userId}", profileController.UpdateProfile)
	router.Delete("/{userId}", profileController.DeleteProfile)
}

func attachMessageRoutes(router chi.Router, messageController *controllers.MessageController) {
	router.Post("/", messageController.Send)
	router.Get("/client/{name}", messageController.ListForClient)
	router.Put("/{id}", messageController.Edit)
	router.Delete("/{id}", messageController.Delete)
	router.Put("/{id}/read", messageController.MarkRead)
}

func attachReportRoutes(router chi.Router, reportController *controllers.ReportController) {
	router.Get("/patient/{name}", reportController.ListByPatient)
}

func attachPaymentRoutes(router chi.Router, paymentController *controllers.PaymentController) {
	router.Get("/client/{name}", paymentController.ListByPatient)
}

func attachNotificationRoutes(router chi.Router, notificationController *controllers.NotificationController) {
	router.Get("/client/{name}", notificationController.ClientCounters)
}

// Object names keep their folder prefix, so the whole remaining path is the name.
func attachAttachmentRoutes(router chi.Router, attachmentController *controllers.AttachmentController) {
	router.Get("/*", attachmentController.GetURL)
}
