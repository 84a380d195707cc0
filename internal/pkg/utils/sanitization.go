package utils

import (
	"clinic-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		sanitizedArray = append(sanitizedArray, trimmed)
	}
	return sanitizedArray
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	input.Contact = strings.TrimSpace(input.Contact)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	input.Contact = strings.TrimSpace(input.Contact)
	input.Address = strings.TrimSpace(input.Address)
	input.FamilyContext.MaritalStatus = strings.TrimSpace(input.FamilyContext.MaritalStatus)
	input.FamilyContext.Members = cleanWhiteSpaceFromEachStringOfAnArray(input.FamilyContext.Members)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.Patient = strings.TrimSpace(input.Patient)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeRescheduleAppointmentRequest(input *requests.RescheduleAppointment) {
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeCancelAppointmentRequest(input *requests.CancelAppointment) {
	input.Reason = strings.TrimSpace(input.Reason)
	input.CancelledBy = strings.TrimSpace(input.CancelledBy)
}

func SanitizeSendMessageRequest(input *requests.SendMessage) {
	input.Sender = strings.TrimSpace(input.Sender)
	input.Subject = strings.TrimSpace(input.Subject)
}

func SanitizeReplyMessageRequest(input *requests.ReplyMessage) {
	input.Recipient = strings.TrimSpace(input.Recipient)
	input.Subject = strings.TrimSpace(input.Subject)
}
