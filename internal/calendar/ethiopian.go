package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Supported window for Gregorian to Ethiopian conversion. Outside it the
// fixed Sep 11/12 New Year rule drifts from the Julian leap cycle.
var (
	MinGregorianDate = GregorianDate{Year: 1900, Month: 1, Day: 1}
	MaxGregorianDate = GregorianDate{Year: 2100, Month: 12, Day: 31}
)

// newYearAnchor returns the Gregorian date of Meskerem 1 of ethYear.
//
// Enkutatash falls on September 11 of ethYear+7, or on September 12 when
// the following Gregorian year is a leap year: the sixth day of Pagume
// that precedes it absorbs the extra day.
func newYearAnchor(ethYear int) time.Time {
	gregYear := ethYear + 7
	day := 11
	if IsGregorianLeapYear(gregYear + 1) {
		day = 12
	}
	return time.Date(gregYear, time.September, day, 0, 0, 0, 0, time.UTC)
}

// EthiopianToGregorian converts an Ethiopian date to the Gregorian calendar.
func EthiopianToGregorian(year, month, day int) (GregorianDate, error) {
	eth := EthiopianDate{Year: year, Month: month, Day: day}
	if err := eth.Validate(); err != nil {
		return GregorianDate{}, err
	}

	daysSinceNewYear := (month-1)*30 + (day - 1)
	return GregorianFromTime(newYearAnchor(year).AddDate(0, 0, daysSinceNewYear)), nil
}

// GregorianToEthiopian converts a Gregorian date between 1900-01-01 and
// 2100-12-31 to the Ethiopian calendar.
func GregorianToEthiopian(year, month, day int) (EthiopianDate, error) {
	date, err := validGregorian(year, month, day)
	if err != nil {
		return EthiopianDate{}, err
	}

	// Meskerem 1 of year-7 falls in September of this Gregorian year.
	ethYear := year - 8
	if !date.Before(newYearAnchor(ethYear + 1)) {
		ethYear++
	}

	offset := daysBetween(newYearAnchor(ethYear), date)
	return EthiopianDate{
		Year:  ethYear,
		Month: offset/30 + 1,
		Day:   offset%30 + 1,
	}, nil
}

// validGregorian checks that the fields name a real day inside the
// supported window and returns it as a UTC midnight time.
func validGregorian(year, month, day int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, &InvalidGregorianDateError{Year: year, Month: month, Day: day, Reason: "not a calendar date"}
	}
	if t.Before(MinGregorianDate.Time()) || t.After(MaxGregorianDate.Time()) {
		return time.Time{}, &InvalidGregorianDateError{
			Year: year, Month: month, Day: day,
			Reason: fmt.Sprintf("outside supported range %s..%s", MinGregorianDate, MaxGregorianDate),
		}
	}
	return t, nil
}

// daysBetween counts whole days from a to b. Both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// AddDays moves d by n days, rolling through month lengths and into the
// neighbouring years. n may be negative.
func AddDays(d EthiopianDate, n int) (EthiopianDate, error) {
	if err := d.Validate(); err != nil {
		return EthiopianDate{}, err
	}

	year, month, day := d.Year, d.Month, d.Day+n
	for day > daysInMonth(year, month) {
		day -= daysInMonth(year, month)
		month++
		if month > Pagume {
			month = Meskerem
			year++
		}
	}
	for day < 1 {
		month--
		if month < Meskerem {
			month = Pagume
			year--
		}
		day += daysInMonth(year, month)
	}

	return EthiopianDate{Year: year, Month: month, Day: day}, nil
}

// ParseEthiopianDate parses "YYYY-MM-DD" or "YYYY/MM/DD" and validates the result.
func ParseEthiopianDate(s string) (EthiopianDate, error) {
	y, m, d, err := splitDate("ParseEthiopianDate", s)
	if err != nil {
		return EthiopianDate{}, err
	}
	date := EthiopianDate{Year: y, Month: m, Day: d}
	if err := date.Validate(); err != nil {
		return EthiopianDate{}, err
	}
	return date, nil
}

// ParseGregorianDate parses "YYYY-MM-DD" or "YYYY/MM/DD" into a real calendar date.
// The conversion window is not enforced here.
func ParseGregorianDate(s string) (GregorianDate, error) {
	y, m, d, err := splitDate("ParseGregorianDate", s)
	if err != nil {
		return GregorianDate{}, err
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return GregorianDate{}, &InvalidGregorianDateError{Year: y, Month: m, Day: d, Reason: "not a calendar date"}
	}
	return GregorianDate{Year: y, Month: m, Day: d}, nil
}

func splitDate(funcName, s string) (year, month, day int, err error) {
	parts := strings.Split(strings.ReplaceAll(strings.TrimSpace(s), "/", "-"), "-")
	if len(parts) != 3 {
		return 0, 0, 0, &InvalidInputTypeError{Func: funcName, Param: "date", Expected: "YYYY-MM-DD", Value: s}
	}

	fields := []struct {
		name string
		dst  *int
	}{{"year", &year}, {"month", &month}, {"day", &day}}
	for i, f := range fields {
		v, err := strconv.Atoi(parts[i])
		if err != nil {
			return 0, 0, 0, &InvalidInputTypeError{Func: funcName, Param: f.name, Expected: "integer", Value: parts[i]}
		}
		*f.dst = v
	}
	return year, month, day, nil
}
