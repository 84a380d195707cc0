package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("slot_date", validateSlotDate)
	validate.RegisterValidation("slot_time", validateSlotTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSlotDate(fl validator.FieldLevel) bool {
	return IsValidSlotDate(fl.Field().String())
}

func validateSlotTime(fl validator.FieldLevel) bool {
	return IsValidSlotTime(fl.Field().String())
}
