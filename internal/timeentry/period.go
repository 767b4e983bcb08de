package timeentry

import (
	"time"

	"timetrack/internal/calendar"
	timeentryerrors "timetrack/internal/timeentry/errors"
)

// PeriodLayout is the wire format of selection dates.
const PeriodLayout = "02/01/2006"

// ParsePeriod validates a reporting period: start strictly before end,
// start inside the supported year window, end not in the future.
func ParsePeriod(startStr, endStr string, now time.Time) (time.Time, time.Time, error) {
	start, err := time.Parse(PeriodLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, timeentryerrors.ErrInvalidPeriod
	}
	end, err := time.Parse(PeriodLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, timeentryerrors.ErrInvalidPeriod
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !start.Before(end) || start.Year() < calendar.MinYear || end.After(today) {
		return time.Time{}, time.Time{}, timeentryerrors.ErrInvalidPeriod
	}

	return start, end, nil
}
