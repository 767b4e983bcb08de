package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBelarusHolidays_FixedDates(t *testing.T) {
	set := BelarusHolidays{}.HolidaysFor(2021)

	for _, md := range []MonthDay{
		{1, 1}, {1, 7}, {3, 8}, {5, 1}, {5, 9}, {7, 3}, {11, 7}, {12, 25},
	} {
		assert.Contains(t, set, md)
	}
}

func TestBelarusHolidays_January2From2020(t *testing.T) {
	assert.NotContains(t, BelarusHolidays{}.HolidaysFor(2019), MonthDay{1, 2})
	assert.Contains(t, BelarusHolidays{}.HolidaysFor(2020), MonthDay{1, 2})
	assert.Contains(t, BelarusHolidays{}.HolidaysFor(2024), MonthDay{1, 2})
}

func TestBelarusHolidays_Radonitsa(t *testing.T) {
	cases := map[int]MonthDay{
		2020: {4, 28},
		2021: {5, 11},
		2022: {5, 3},
		2023: {4, 25},
	}
	for year, want := range cases {
		assert.Contains(t, BelarusHolidays{}.HolidaysFor(year), want, "year %d", year)
	}
}

func TestOrthodoxEaster(t *testing.T) {
	cases := map[int]time.Time{
		2020: time.Date(2020, time.April, 19, 0, 0, 0, 0, time.UTC),
		2021: time.Date(2021, time.May, 2, 0, 0, 0, 0, time.UTC),
		2022: time.Date(2022, time.April, 24, 0, 0, 0, 0, time.UTC),
		2023: time.Date(2023, time.April, 16, 0, 0, 0, 0, time.UTC),
	}
	for year, want := range cases {
		assert.Equal(t, want, orthodoxEaster(year), "year %d", year)
	}
}

func TestMonthHolidays(t *testing.T) {
	days := MonthHolidays(BelarusHolidays{}, 2021, 5)
	assert.Equal(t, map[int]bool{1: true, 9: true, 11: true}, days)

	assert.Empty(t, MonthHolidays(nil, 2021, 5))
	assert.Empty(t, MonthHolidays(BelarusHolidays{}, 2021, 2))
}
