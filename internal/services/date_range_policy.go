package services

import (
	"strings"
	"time"
)

func ParseDateRange(rawFrom string, rawTo string) (time.Time, time.Time, error) {
	fromRaw := strings.TrimSpace(rawFrom)
	toRaw := strings.TrimSpace(rawTo)

	if fromRaw == "" {
		return time.Time{}, time.Time{}, requiredFieldError("from")
	}
	if toRaw == "" {
		return time.Time{}, time.Time{}, requiredFieldError("to")
	}

	from, err := ParseCalendarDate(fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, newValidationError("from", "invalid from date")
	}
	to, err := ParseCalendarDate(toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, newValidationError("to", "invalid to date")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, newValidationError("to", "to must not be before from")
	}
	return from, to, nil
}
