package services

import (
	"strings"
	"time"
)

const CalendarDateLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// CalendarDate keeps the wall-clock day of value and anchors it at UTC
// midnight, the form every stored date column uses.
func CalendarDate(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Today(now time.Time, location *time.Location) time.Time {
	return CalendarDate(DateAtLocation(now, location))
}

func DayRange(value time.Time) (time.Time, time.Time) {
	start := CalendarDate(value)
	return start, start.AddDate(0, 0, 1)
}

func ParseCalendarDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := time.Parse(CalendarDateLayout, trimmed); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, err
	}
	return CalendarDate(parsed), nil
}

func WeekEnd(day time.Time, weekStartsOn time.Weekday) time.Time {
	start := CalendarDate(day)
	offset := (int(start.Weekday()) - int(weekStartsOn) + 7) % 7
	return start.AddDate(0, 0, 6-offset)
}

func ParseWeekday(raw string) (time.Weekday, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		name := strings.ToLower(weekday.String())
		if normalized == name || normalized == name[:3] {
			return weekday, true
		}
	}
	return time.Sunday, false
}
