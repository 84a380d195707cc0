package utils

import (
	"clinic-service/internal/pkg/dto/requests"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateSlots(t *testing.T) {
	slots := CandidateSlots()

	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}, slots)
}

func TestIsValidSlotDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid date", "2025-03-10", true},
		{"leap day", "2024-02-29", true},
		{"not a leap year", "2025-02-29", false},
		{"wrong separator", "2025/03/10", false},
		{"missing zero padding", "2025-3-10", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSlotDate(tt.input))
		})
	}
}

func TestIsValidSlotTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"first slot", "09:00", true},
		{"last slot", "17:00", true},
		{"before opening", "08:00", false},
		{"after closing", "18:00", false},
		{"half hour", "10:30", false},
		{"no padding", "9:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSlotTime(tt.input))
		})
	}
}

func TestValidateStruct_SlotTags(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateAppointment{Patient: "Ana", Date: "2025-03-10", Time: "10:00"})
		assert.NoError(t, err)
	})

	t.Run("Invalid Time", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateAppointment{Patient: "Ana", Date: "2025-03-10", Time: "18:00"})
		require.Error(t, err)

		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "slot_time", validationErrors[0].Tag())
	})

	t.Run("Missing Patient", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateAppointment{Date: "2025-03-10", Time: "10:00"})
		require.Error(t, err)

		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "Patient", validationErrors[0].Field())
		assert.Equal(t, "required", validationErrors[0].Tag())
	})
}
