package requests

type CreatePayment struct {
	Patient string        `validate:"required"`
	Amount  float64       `validate:"gte=0"`
	Status  string        `validate:"required,oneof=pending paid cancelled"`
	Method  string        `validate:"required"`
	Receipt *UploadedFile `validate:"-"`
}
