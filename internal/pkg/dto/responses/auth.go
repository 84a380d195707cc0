package responses

import "clinic-service/internal/app/models"

type RegisterUser struct {
	UserID string `json:"userId"`
}

type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type UserProfile struct {
	User    *models.User    `json:"user"`
	Patient *models.Patient `json:"patient"`
}

type PatientDetail struct {
	Patient      *models.Patient      `json:"patient"`
	Appointments []models.Appointment `json:"appointments"`
}
