package appointments

import (
	"bytes"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
)

func encodeCalendar(appointments []models.Appointment, location *time.Location) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, constvars.CalendarProductID)

	stamp := time.Now().UTC()
	for _, appointment := range appointments {
		event, err := toICal(appointment, location, stamp)
		if err != nil {
			return nil, exceptions.ErrCalendarEncode(err)
		}
		cal.Children = append(cal.Children, event)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, exceptions.ErrCalendarEncode(err)
	}
	return buf.Bytes(), nil
}

// toICal maps one appointment to a VEVENT lasting one slot.
func toICal(appointment models.Appointment, location *time.Location, stamp time.Time) (*ical.Component, error) {
	start, err := appointment.StartsAt(location)
	if err != nil {
		return nil, err
	}
	end := start.Add(constvars.SlotDurationInMinutes * time.Minute)

	event := ical.NewComponent(ical.CompEvent)
	event.Props.SetText(ical.PropUID, appointment.ID.Hex()+"@clinic-service")
	event.Props.SetText(ical.PropSummary, fmt.Sprintf(constvars.CalendarSummary, appointment.Provider))
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	event.Props.SetDateTime(ical.PropDateTimeStart, start.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, end.UTC())
	event.Props.SetText(ical.PropStatus, "CONFIRMED")
	return event, nil
}
