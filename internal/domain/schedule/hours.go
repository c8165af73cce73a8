package schedule

// ResolveDayWindow computes the effective open/close window for one calendar
// day. The precedence is asymmetric: the business can veto a day, while a
// staff override can only narrow it. A staff row never reopens a day the
// business has closed.
//
// businessDay is the business-wide working_hours row for the day (nil when
// none exists), staffDay the staff-specific override (nil when no staff was
// requested or no override exists). The boolean is false when the day is
// closed for the requested scope.
func ResolveDayWindow(staffModuleEnabled bool, settings *Settings, dayOfWeek int, businessDay, staffDay *DayHours) (Window, bool) {
	if !staffModuleEnabled {
		if settings == nil || !settings.WorksOn(dayOfWeek) {
			return Window{}, false
		}
		w, err := NewWindow(settings.StartTime, settings.EndTime)
		if err != nil {
			return Window{}, false
		}
		return w, true
	}

	if businessDay == nil || !businessDay.IsActive {
		return Window{}, false
	}
	window := businessDay.Window

	if staffDay != nil {
		if !staffDay.IsActive {
			return Window{}, false
		}
		narrowed, ok := window.Intersect(staffDay.Window)
		if !ok {
			return Window{}, false
		}
		window = narrowed
	}

	return window, true
}
