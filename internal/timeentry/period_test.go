package timeentry

import (
	"testing"
	"time"

	timeentryerrors "timetrack/internal/timeentry/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var periodNow = time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestParsePeriod_Valid(t *testing.T) {
	start, end, err := ParsePeriod("01/05/2023", "31/05/2023", periodNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, time.May, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestParsePeriod_EndOnToday(t *testing.T) {
	_, _, err := ParsePeriod("01/06/2023", "15/06/2023", periodNow)
	assert.NoError(t, err)
}

func TestParsePeriod_Invalid(t *testing.T) {
	cases := map[string]struct {
		start, end string
	}{
		"equal dates":        {"01/05/2023", "01/05/2023"},
		"start after end":    {"10/05/2023", "01/05/2023"},
		"before window":      {"31/12/2009", "01/05/2023"},
		"end in future":      {"01/05/2023", "16/06/2023"},
		"bad start format":   {"2023-05-01", "31/05/2023"},
		"bad end format":     {"01/05/2023", "May 31 2023"},
		"empty start":        {"", "31/05/2023"},
		"nonexistent date":   {"31/02/2023", "31/05/2023"},
	}

	for name, tc := range cases {
		_, _, err := ParsePeriod(tc.start, tc.end, periodNow)
		assert.ErrorIs(t, err, timeentryerrors.ErrInvalidPeriod, name)
	}
}
