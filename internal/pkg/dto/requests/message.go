package requests

type SendMessage struct {
	Sender  string `json:"sender" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"text" validate:"required"`
}

type ReplyMessage struct {
	Recipient string `json:"recipient" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Text      string `json:"text" validate:"required"`
}

type EditMessage struct {
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"text" validate:"required"`
}
