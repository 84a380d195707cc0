package responses

import "clinic-service/internal/app/models"

type ClientMessages struct {
	Sent     []models.Message `json:"sent"`
	Received []models.Message `json:"received"`
}
