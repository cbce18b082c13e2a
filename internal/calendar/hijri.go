package calendar

import "time"

// HijriDate is a day on the tabular Islamic calendar.
type HijriDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// hijriEpoch is the Julian Day Number of 1 Muharram AH 1 (civil epoch).
const hijriEpoch = 1948440

// hijriSearchDays bounds HijriToGregorian: two Gregorian years, one leap.
const hijriSearchDays = 731

// GregorianToJDN returns the Julian Day Number of a proleptic Gregorian date.
func GregorianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// JDNToGregorian is the inverse of GregorianToJDN.
func JDNToGregorian(jdn int) GregorianDate {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	return GregorianDate{
		Year:  100*b + d - 4800 + m/10,
		Month: m + 3 - 12*(m/10),
		Day:   e - (153*m+2)/5 + 1,
	}
}

// HijriToJDN returns the Julian Day Number of a tabular Hijri date.
// Leap years follow the 30-year cycle (11 leap years per cycle).
func HijriToJDN(year, month, day int) int {
	return (11*year+3)/30 + 354*year + 30*month - (month-1)/2 + day + hijriEpoch - 385
}

// JDNToHijri is the inverse of HijriToJDN.
func JDNToHijri(jdn int) HijriDate {
	l := jdn - hijriEpoch + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
	month := (24 * l) / 709

	return HijriDate{
		Year:  30*n + j - 30,
		Month: month,
		Day:   l - (709*month)/24,
	}
}

// GregorianToHijri converts through the Julian Day Number.
func GregorianToHijri(g GregorianDate) HijriDate {
	return JDNToHijri(GregorianToJDN(g.Year, g.Month, g.Day))
}

// GregorianToHijriYear returns the Hijri year containing g.
func GregorianToHijriYear(g GregorianDate) int {
	return GregorianToHijri(g).Year
}

// HijriToGregorian finds the Gregorian day in targetYear that carries the
// given Hijri date.
//
// There is no closed-form inverse here: the search walks 731 days starting
// on January 1 of targetYear-1 and returns the first day whose Hijri date
// matches and whose Gregorian year is targetYear. The second result is
// false when the window holds no such day; that is a normal outcome, not
// an error. Callers pass a target year that plausibly contains the date.
func HijriToGregorian(year, month, day, targetYear int) (GregorianDate, bool) {
	start := time.Date(targetYear-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	want := HijriDate{Year: year, Month: month, Day: day}

	for i := 0; i < hijriSearchDays; i++ {
		g := GregorianFromTime(start.AddDate(0, 0, i))
		if g.Year == targetYear && GregorianToHijri(g) == want {
			return g, true
		}
	}
	return GregorianDate{}, false
}
