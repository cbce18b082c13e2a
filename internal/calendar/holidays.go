package calendar

import (
	"sort"

	"github.com/zapponejosh/ethiocal/internal/locale"
)

// Holiday is a named holiday resolved for one Ethiopian year.
type Holiday struct {
	Key         string         `json:"key"`
	Tags        []Tag          `json:"tags"`
	Movable     bool           `json:"movable"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Ethiopian   EthiopianDate  `json:"ethiopian"`
	Gregorian   *GregorianDate `json:"gregorian,omitempty"` // movable holidays only
}

// HasAnyTag reports whether h carries at least one of tags.
// An empty tag list matches every holiday.
func (h Holiday) HasAnyTag(tags ...Tag) bool {
	if len(tags) == 0 {
		return true
	}
	for _, want := range tags {
		for _, have := range h.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// IslamicOccurrence is one hit of a Hijri date inside an Ethiopian year.
type IslamicOccurrence struct {
	Ethiopian EthiopianDate `json:"ethiopian"`
	Gregorian GregorianDate `json:"gregorian"`
}

// FindAllIslamicOccurrences locates every day of the Ethiopian year that
// carries the Hijri month and day, in chronological order.
//
// Hijri years are about 11 days shorter than Ethiopian years, so up to
// three of them overlap one Ethiopian year: the one containing Enkutatash
// and the next two. Each is searched in both Gregorian years the Ethiopian
// year spans. Misses are skipped; only hits landing in year are kept.
func FindAllIslamicOccurrences(year, hijriMonth, hijriDay int) []IslamicOccurrence {
	newYear := GregorianFromTime(newYearAnchor(year))
	startHijriYear := GregorianToHijriYear(newYear)

	seen := make(map[EthiopianDate]bool)
	var occurrences []IslamicOccurrence

	for hijriYear := startHijriYear; hijriYear <= startHijriYear+2; hijriYear++ {
		for _, target := range []int{newYear.Year, newYear.Year + 1} {
			g, ok := HijriToGregorian(hijriYear, hijriMonth, hijriDay, target)
			if !ok {
				continue
			}
			eth, err := GregorianToEthiopian(g.Year, g.Month, g.Day)
			if err != nil || eth.Year != year || seen[eth] {
				continue
			}
			seen[eth] = true
			occurrences = append(occurrences, IslamicOccurrence{Ethiopian: eth, Gregorian: g})
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Ethiopian.Before(occurrences[j].Ethiopian)
	})
	return occurrences
}

// GetHoliday resolves one holiday in the Ethiopian year.
//
// It returns nil, nil when the key is not a known holiday or when an
// Islamic holiday does not occur in the year. When an Islamic holiday
// occurs twice, the first occurrence is returned.
func GetHoliday(key string, year int, lang locale.Lang) (*Holiday, error) {
	// ============================================================================
	// 1. FIXED DAYS
	// ============================================================================
	if f, ok := tables.fixed(key); ok {
		h := fixedDayHoliday(f, year, lang)
		return &h, nil
	}

	// ============================================================================
	// 2. MOVABLE CHRISTIAN FEASTS (Bahire Hasab)
	// ============================================================================
	if m, ok := tables.movable(key); ok {
		h, err := movableChristianHoliday(m, year, lang)
		if err != nil {
			return nil, err
		}
		return &h, nil
	}

	// ============================================================================
	// 3. ISLAMIC HOLIDAYS (Hijri search)
	// ============================================================================
	if i, ok := tables.islamic(key); ok {
		all := islamicHolidays(i, year, lang)
		if len(all) == 0 {
			return nil, nil
		}
		return &all[0], nil
	}

	return nil, nil
}

// GetHolidaysInMonth returns the holidays of an Ethiopian month sorted by
// day. When filter is non-empty only holidays carrying one of its tags are
// returned.
func GetHolidaysInMonth(year, month int, lang locale.Lang, filter ...Tag) ([]Holiday, error) {
	if month < Meskerem || month > Pagume {
		return nil, &InvalidInputTypeError{
			Func:     "GetHolidaysInMonth",
			Param:    "month",
			Expected: "integer in 1..13",
			Value:    month,
		}
	}

	all, err := GetHolidaysForYear(year, lang, filter...)
	if err != nil {
		return nil, err
	}

	var inMonth []Holiday
	for _, h := range all {
		if h.Ethiopian.Month == month {
			inMonth = append(inMonth, h)
		}
	}
	return inMonth, nil
}

// GetHolidaysForYear returns every holiday occurrence of the Ethiopian year,
// sorted by month and day. A year can hold the same Islamic holiday twice.
func GetHolidaysForYear(year int, lang locale.Lang, filter ...Tag) ([]Holiday, error) {
	var all []Holiday

	for _, f := range tables.Fixed {
		all = append(all, fixedDayHoliday(f, year, lang))
	}
	for _, m := range tables.Movable {
		h, err := movableChristianHoliday(m, year, lang)
		if err != nil {
			return nil, err
		}
		all = append(all, h)
	}
	for _, i := range tables.Islamic {
		all = append(all, islamicHolidays(i, year, lang)...)
	}

	var filtered []Holiday
	for _, h := range all {
		if h.HasAnyTag(filter...) {
			filtered = append(filtered, h)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Ethiopian.Before(filtered[j].Ethiopian)
	})
	return filtered, nil
}

func fixedDayHoliday(f fixedHoliday, year int, lang locale.Lang) Holiday {
	return newHoliday(f.Key, f.Tags, false, f.dateIn(year), nil, lang)
}

func movableChristianHoliday(m movableHoliday, year int, lang locale.Lang) (Holiday, error) {
	eth, err := GetMovableHoliday(m.Tewsak, year)
	if err != nil {
		return Holiday{}, err
	}
	g, err := EthiopianToGregorian(eth.Year, eth.Month, eth.Day)
	if err != nil {
		return Holiday{}, err
	}
	return newHoliday(m.Key, m.Tags, true, eth, &g, lang), nil
}

func islamicHolidays(i islamicHoliday, year int, lang locale.Lang) []Holiday {
	var out []Holiday
	for _, occ := range FindAllIslamicOccurrences(year, i.HijriMonth, i.HijriDay) {
		g := occ.Gregorian
		out = append(out, newHoliday(i.Key, i.Tags, true, occ.Ethiopian, &g, lang))
	}
	return out
}

func newHoliday(key string, tags []Tag, movable bool, eth EthiopianDate, g *GregorianDate, lang locale.Lang) Holiday {
	catalog := locale.Default()
	return Holiday{
		Key:         key,
		Tags:        append([]Tag(nil), tags...),
		Movable:     movable,
		Name:        catalog.HolidayName(lang, key),
		Description: catalog.HolidayDescription(lang, key),
		Ethiopian:   eth,
		Gregorian:   g,
	}
}
