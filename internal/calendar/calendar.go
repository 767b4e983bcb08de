package calendar

import (
	"fmt"
	"time"
)

// MinYear is the start of the supported reporting window.
const MinYear = 2010

// MonthNames are the selectable month labels, index+1 = month number.
var MonthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Day is one populated calendar slot.
type Day struct {
	Num     int  `json:"num"`
	Working bool `json:"working"`
}

// Week is a Monday-first row of seven slots; nil marks padding before
// day 1 or after the last day of the month.
type Week [7]*Day

// Years lists the selectable years, newest first, down to MinYear.
func Years(now time.Time) []int {
	years := make([]int, 0, now.Year()-MinYear+1)
	for y := now.Year(); y >= MinYear; y-- {
		years = append(years, y)
	}
	return years
}

// YearSupported reports whether year falls inside the reporting window.
func YearSupported(year int, now time.Time) bool {
	return year >= MinYear && year <= now.Year()
}

// MonthNumber resolves a month label ("Jan".."Dec") to 1..12.
func MonthNumber(name string) (int, bool) {
	for i, m := range MonthNames {
		if m == name {
			return i + 1, true
		}
	}
	return 0, false
}

// MonthLayout distributes the days of a month over Monday-first week
// rows. A day is non-working when it falls on Saturday or Sunday or its
// number is present in holidays. The holidays set may be empty. Output
// depends only on the arguments.
func MonthLayout(year, month int, holidays map[int]bool) ([]Week, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("calendar: month %d out of range", month)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := mondayIndex(first.Weekday())

	weeks := make([]Week, 0, 6)
	var week Week
	slot := offset

	for num := 1; num <= daysInMonth; num++ {
		wd := mondayIndex(time.Date(year, time.Month(month), num, 0, 0, 0, 0, time.UTC).Weekday())
		week[slot] = &Day{
			Num:     num,
			Working: wd < 5 && !holidays[num],
		}
		slot++
		if slot == 7 {
			weeks = append(weeks, week)
			week = Week{}
			slot = 0
		}
	}
	if slot != 0 {
		weeks = append(weeks, week)
	}

	return weeks, nil
}

// mondayIndex maps time.Weekday (Sunday=0) to a Monday=0 index.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
