package calendar

import "time"

// MonthDay identifies a holiday inside one year.
type MonthDay struct {
	Month int
	Day   int
}

// HolidayProvider yields the public holidays of a year for the fixed
// jurisdiction of the deployment.
type HolidayProvider interface {
	HolidaysFor(year int) map[MonthDay]struct{}
}

// MonthHolidays projects a provider's year set onto the day numbers of
// one month.
func MonthHolidays(p HolidayProvider, year, month int) map[int]bool {
	days := make(map[int]bool)
	if p == nil {
		return days
	}
	for md := range p.HolidaysFor(year) {
		if md.Month == month {
			days[md.Day] = true
		}
	}
	return days
}

// BelarusHolidays lists the public holidays of the Republic of Belarus:
// the fixed state holidays plus Radonitsa, which floats with the
// Orthodox Easter date.
type BelarusHolidays struct{}

func (BelarusHolidays) HolidaysFor(year int) map[MonthDay]struct{} {
	set := map[MonthDay]struct{}{
		{1, 1}:   {}, // New Year
		{1, 7}:   {}, // Orthodox Christmas
		{3, 8}:   {}, // Women's Day
		{5, 1}:   {}, // Labour Day
		{5, 9}:   {}, // Victory Day
		{7, 3}:   {}, // Independence Day
		{11, 7}:  {}, // October Revolution Day
		{12, 25}: {}, // Catholic Christmas
	}
	if year >= 2020 {
		set[MonthDay{1, 2}] = struct{}{}
	}

	radonitsa := orthodoxEaster(year).AddDate(0, 0, 9)
	set[MonthDay{int(radonitsa.Month()), radonitsa.Day()}] = struct{}{}

	return set
}

// orthodoxEaster computes Easter by the Julian computus (Meeus) and
// shifts the result onto the Gregorian calendar. The 13-day shift holds
// for 1900-2099, well beyond the supported year window.
func orthodoxEaster(year int) time.Time {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := (d+e+114)%31 + 1

	julian := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return julian.AddDate(0, 0, 13)
}
