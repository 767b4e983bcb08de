package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthLayout_May2021(t *testing.T) {
	// May 1 2021 is a Saturday, so the first row carries five empty
	// slots; the month needs six rows.
	holidays := MonthHolidays(BelarusHolidays{}, 2021, 5)
	weeks, err := MonthLayout(2021, 5, holidays)
	require.NoError(t, err)
	require.Len(t, weeks, 6)

	for i := 0; i < 5; i++ {
		assert.Nil(t, weeks[0][i])
	}
	require.NotNil(t, weeks[0][5])
	assert.Equal(t, 1, weeks[0][5].Num)

	working := 0
	seen := 0
	for _, week := range weeks {
		for _, day := range week {
			if day == nil {
				continue
			}
			seen++
			if day.Working {
				working++
			}
		}
	}
	assert.Equal(t, 31, seen)
	// Weekends plus May 1, May 9 (both weekend anyway) and Radonitsa
	// on Tuesday May 11 leave 20 working days.
	assert.Equal(t, 20, working)
}

func TestMonthLayout_April2021(t *testing.T) {
	holidays := MonthHolidays(BelarusHolidays{}, 2021, 4)
	weeks, err := MonthLayout(2021, 4, holidays)
	require.NoError(t, err)
	require.Len(t, weeks, 5)

	// April 1 2021 is a Thursday.
	for i := 0; i < 3; i++ {
		assert.Nil(t, weeks[0][i])
	}
	require.NotNil(t, weeks[0][3])
	assert.Equal(t, 1, weeks[0][3].Num)

	// Last row ends on Friday the 30th.
	require.NotNil(t, weeks[4][4])
	assert.Equal(t, 30, weeks[4][4].Num)
	assert.Nil(t, weeks[4][5])
	assert.Nil(t, weeks[4][6])
}

func TestMonthLayout_DayNumbersAreContiguous(t *testing.T) {
	for month := 1; month <= 12; month++ {
		weeks, err := MonthLayout(2023, month, nil)
		require.NoError(t, err)

		expected := 1
		for _, week := range weeks {
			for _, day := range week {
				if day == nil {
					continue
				}
				assert.Equal(t, expected, day.Num)
				expected++
			}
		}
	}
}

func TestMonthLayout_WeekendsNotWorking(t *testing.T) {
	weeks, err := MonthLayout(2024, 6, nil)
	require.NoError(t, err)

	for _, week := range weeks {
		for slot, day := range week {
			if day == nil {
				continue
			}
			if slot >= 5 {
				assert.False(t, day.Working, "day %d in slot %d", day.Num, slot)
			} else {
				assert.True(t, day.Working, "day %d in slot %d", day.Num, slot)
			}
		}
	}
}

func TestMonthLayout_MonthOutOfRange(t *testing.T) {
	_, err := MonthLayout(2021, 0, nil)
	assert.Error(t, err)

	_, err = MonthLayout(2021, 13, nil)
	assert.Error(t, err)
}

func TestYears(t *testing.T) {
	now := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)
	years := Years(now)

	require.Len(t, years, 14)
	assert.Equal(t, 2023, years[0])
	assert.Equal(t, 2010, years[len(years)-1])
}

func TestYearSupported(t *testing.T) {
	now := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, YearSupported(2010, now))
	assert.True(t, YearSupported(2023, now))
	assert.False(t, YearSupported(2009, now))
	assert.False(t, YearSupported(2024, now))
}

func TestMonthNumber(t *testing.T) {
	n, ok := MonthNumber("Jan")
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	n, ok = MonthNumber("Dec")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = MonthNumber("January")
	assert.False(t, ok)
}
