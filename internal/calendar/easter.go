package calendar

import (
	"time"
)

// CalculateOrthodoxEaster returns Easter Sunday of the Gregorian year as
// kept by the Orthodox churches, using the Julian computus (Meeus).
//
// The result is converted from the Julian to the Gregorian calendar. It is
// an independent check on the Bahire Hasab, which reaches the same Sunday
// through the Ethiopian epact tables.
func CalculateOrthodoxEaster(year int) GregorianDate {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := ((d + e + 114) % 31) + 1

	// Julian to Gregorian offset for March and April dates.
	drift := year/100 - year/400 - 2

	julian := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return GregorianFromTime(julian.AddDate(0, 0, drift))
}
