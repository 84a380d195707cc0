package responses

import "clinic-service/internal/app/models"

type Reports struct {
	Normal   []models.Report `json:"normal"`
	External []models.Report `json:"external"`
}

type AttachmentURL struct {
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
}
