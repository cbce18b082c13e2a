package calendar

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// WeekdayName returns the English name of a weekday, 0 = Sunday.
// These names key the tewsak table, so they are never localized.
func WeekdayName(weekday int) string {
	return weekdayNames[mod(weekday, 7)]
}

// SeasonDay returns the 1-based day number of date within a season that
// starts on seasonStart, or 0 when date precedes it.
func SeasonDay(date, seasonStart EthiopianDate) (int, error) {
	g, err := EthiopianToGregorian(date.Year, date.Month, date.Day)
	if err != nil {
		return 0, err
	}
	s, err := EthiopianToGregorian(seasonStart.Year, seasonStart.Month, seasonStart.Day)
	if err != nil {
		return 0, err
	}

	days := daysBetween(s.Time(), g.Time())
	if days < 0 {
		return 0, nil
	}
	return days + 1, nil
}
