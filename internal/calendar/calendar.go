// Package calendar provides Ethiopian, Gregorian and Hijri calendar
// calculations and the Bahire Hasab computation of movable feasts.
//
// Every function is pure: dates are values, tables are read-only after
// package initialization, and nothing is cached between calls.
package calendar

import (
	"fmt"
	"time"
)

// Month numbers of the Ethiopian calendar.
const (
	Meskerem = 1
	Tikimt   = 2
	Hidar    = 3
	Tahsas   = 4
	Tir      = 5
	Yekatit  = 6
	Megabit  = 7
	Miazia   = 8
	Ginbot   = 9
	Sene     = 10
	Hamle    = 11
	Nehasse  = 12
	Pagume   = 13
)

// EthiopianDate is a day on the Ethiopian calendar.
// Months 1-12 have 30 days; Pagume (13) has 5, or 6 in a leap year.
type EthiopianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String formats the date as YYYY-MM-DD.
func (d EthiopianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Validate checks the month and day against the year's month lengths.
func (d EthiopianDate) Validate() error {
	if d.Month < 1 || d.Month > Pagume || d.Day < 1 {
		return &InvalidEthiopianDateError{Year: d.Year, Month: d.Month, Day: d.Day}
	}
	if d.Day > daysInMonth(d.Year, d.Month) {
		return &InvalidEthiopianDateError{Year: d.Year, Month: d.Month, Day: d.Day}
	}
	return nil
}

// Before reports whether d is earlier than other.
func (d EthiopianDate) Before(other EthiopianDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// GregorianDate is a day on the proleptic Gregorian calendar.
type GregorianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String formats the date as YYYY-MM-DD.
func (d GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns the date at midnight UTC.
func (d GregorianDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// GregorianFromTime drops the time of day and location of t.
func GregorianFromTime(t time.Time) GregorianDate {
	y, m, d := t.Date()
	return GregorianDate{Year: y, Month: int(m), Day: d}
}

// IsGregorianLeapYear reports whether year has a February 29.
func IsGregorianLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// IsEthiopianLeapYear reports whether Pagume has six days in year.
func IsEthiopianLeapYear(year int) bool {
	return mod(year, 4) == 3
}

// DaysInEthiopianMonth returns the number of days in the given month.
func DaysInEthiopianMonth(year, month int) (int, error) {
	if month < 1 || month > Pagume {
		return 0, &InvalidInputTypeError{
			Func:     "DaysInEthiopianMonth",
			Param:    "month",
			Expected: "integer in 1..13",
			Value:    month,
		}
	}
	return daysInMonth(year, month), nil
}

// daysInMonth assumes month is already in range.
func daysInMonth(year, month int) int {
	if month < Pagume {
		return 30
	}
	if IsEthiopianLeapYear(year) {
		return 6
	}
	return 5
}

// Weekday returns the day of the week of d, 0 = Sunday through 6 = Saturday.
func Weekday(d EthiopianDate) (int, error) {
	g, err := EthiopianToGregorian(d.Year, d.Month, d.Day)
	if err != nil {
		return 0, err
	}
	return int(g.Time().Weekday()), nil
}

// mod is the floored modulus, so negative years keep the 4-year cycle.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
