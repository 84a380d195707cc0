package routers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.ListAvailability)
}

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, internalConfig *config.InternalConfig, appointmentController *controllers.AppointmentController) {
	bookingQuota := middlewares.Quota(bookingQuotaGroup, bookingQuotaWindowSec, internalConfig.App.BookingQuotaPerMinute)

	router.With(bookingQuota).Post("/", appointmentController.Create)
	router.Put("/{id}", appointmentController.Reschedule)
	router.Delete("/{id}", appointmentController.Cancel)
	router.Get("/patient/{name}", appointmentController.FindByPatient)
	router.Get("/patient/{name}/calendar.ics", appointmentController.ExportCalendar)
}
