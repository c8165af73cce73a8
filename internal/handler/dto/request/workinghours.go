package request

import (
	"bookingcore/internal/domain/schedule"
	"bookingcore/internal/pkg/errs"
)

var ErrInvalidDayHours = errs.New("invalid day hours")

type DayHoursPayload struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	IsActive  bool   `json:"is_active"`
}

type UpsertWorkingHoursRequest struct {
	Days []DayHoursPayload `json:"days" binding:"required,min=1,max=7,dive"`
}

func (r UpsertWorkingHoursRequest) ToDomain() ([]schedule.DayHours, error) {
	days := make([]schedule.DayHours, 0, len(r.Days))
	for _, d := range r.Days {
		if !d.IsActive {
			// Closed day. The window is never consulted, so the payload's
			// times ("00:00"/"00:00" by convention) are not validated.
			days = append(days, schedule.DayHours{DayOfWeek: d.DayOfWeek})
			continue
		}
		open, err := schedule.ParseTimeOfDay(d.StartTime)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidDayHours)
		}
		close, err := schedule.ParseTimeOfDay(d.EndTime)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidDayHours)
		}
		window, err := schedule.NewWindow(open, close)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidDayHours)
		}
		days = append(days, schedule.DayHours{
			DayOfWeek: d.DayOfWeek,
			Window:    window,
			IsActive:  d.IsActive,
		})
	}
	return days, nil
}
