package requests

type CreateReport struct {
	Patient     string          `validate:"required"`
	Type        string          `validate:"required"`
	Entity      string          `validate:"max=100"`
	Content     string          `validate:"required"`
	Attachments []*UploadedFile `validate:"max=10"`
}

type UpdateReport struct {
	Type    string `json:"type" validate:"required"`
	Content string `json:"content" validate:"required"`
	Entity  string `json:"entity"`
}
