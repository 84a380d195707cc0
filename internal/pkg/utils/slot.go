package utils

import (
	"clinic-service/internal/pkg/constvars"
	"fmt"
	"time"
)

// CandidateSlots returns the bookable hours of a day in ascending order.
func CandidateSlots() []string {
	slots := make([]string, 0, constvars.SlotLastHour-constvars.SlotFirstHour+1)
	for hour := constvars.SlotFirstHour; hour <= constvars.SlotLastHour; hour++ {
		slots = append(slots, FormatSlotHour(hour))
	}
	return slots
}

func FormatSlotHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func IsValidSlotDate(date string) bool {
	parsed, err := time.Parse(constvars.SlotDateLayout, date)
	if err != nil {
		return false
	}
	return parsed.Format(constvars.SlotDateLayout) == date
}

func IsValidSlotTime(slotTime string) bool {
	for _, candidate := range CandidateSlots() {
		if candidate == slotTime {
			return true
		}
	}
	return false
}

func FormatDate(t time.Time) string {
	return t.Format(constvars.SlotDateLayout)
}

func Today() string {
	return FormatDate(time.Now())
}

func Tomorrow() string {
	return FormatDate(time.Now().AddDate(0, 0, 1))
}
