package calendar

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Tag classifies a holiday.
type Tag string

const (
	TagPublic    Tag = "public"
	TagReligious Tag = "religious"
	TagChristian Tag = "christian"
	TagMuslim    Tag = "muslim"
	TagState     Tag = "state"
	TagCultural  Tag = "cultural"
)

// ValidTags returns all holiday tags.
func ValidTags() []Tag {
	return []Tag{TagPublic, TagReligious, TagChristian, TagMuslim, TagState, TagCultural}
}

// IsValid checks if a tag is known.
func (t Tag) IsValid() bool {
	for _, valid := range ValidTags() {
		if t == valid {
			return true
		}
	}
	return false
}

//go:embed data/holidays.toml
var holidayTOML []byte

type fixedHoliday struct {
	Key          string `toml:"key"`
	Month        int    `toml:"month"`
	Day          int    `toml:"day"`
	AfterLeapDay int    `toml:"after_leap_day"`
	Tags         []Tag  `toml:"tags"`
}

// dateIn returns the holiday's day in year, honouring AfterLeapDay.
func (f fixedHoliday) dateIn(year int) EthiopianDate {
	day := f.Day
	if f.AfterLeapDay != 0 && IsEthiopianLeapYear(year-1) {
		day = f.AfterLeapDay
	}
	return EthiopianDate{Year: year, Month: f.Month, Day: day}
}

type movableHoliday struct {
	Key    string `toml:"key"`
	Tewsak string `toml:"tewsak"`
	Tags   []Tag  `toml:"tags"`
}

type islamicHoliday struct {
	Key        string `toml:"key"`
	HijriMonth int    `toml:"hijri_month"`
	HijriDay   int    `toml:"hijri_day"`
	Tags       []Tag  `toml:"tags"`
}

// holidayTable is the read-only configuration consumed by the Bahire Hasab
// engine and the holiday resolver.
type holidayTable struct {
	WeekdayTewsak map[string]int   `toml:"weekday_tewsak"`
	MovableTewsak map[string]int   `toml:"movable_tewsak"`
	Fixed         []fixedHoliday   `toml:"fixed"`
	Movable       []movableHoliday `toml:"movable"`
	Islamic       []islamicHoliday `toml:"islamic"`
}

var tables = mustLoadHolidayTable(holidayTOML)

func mustLoadHolidayTable(data []byte) *holidayTable {
	t, err := loadHolidayTable(data)
	if err != nil {
		panic(fmt.Sprintf("calendar: embedded holiday table: %v", err))
	}
	return t
}

func loadHolidayTable(data []byte) (*holidayTable, error) {
	var t holidayTable
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode holiday table: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *holidayTable) validate() error {
	var errs []error

	for day := 0; day < 7; day++ {
		if _, ok := t.WeekdayTewsak[WeekdayName(day)]; !ok {
			errs = append(errs, fmt.Errorf("weekday_tewsak: missing %s", WeekdayName(day)))
		}
	}

	seen := make(map[string]bool)
	checkKey := func(key string, tags []Tag) {
		if key == "" {
			errs = append(errs, errors.New("holiday with empty key"))
		}
		if seen[key] {
			errs = append(errs, fmt.Errorf("duplicate holiday key %q", key))
		}
		seen[key] = true
		for _, tag := range tags {
			if !tag.IsValid() {
				errs = append(errs, fmt.Errorf("holiday %q: unknown tag %q", key, tag))
			}
		}
	}

	for _, f := range t.Fixed {
		checkKey(f.Key, f.Tags)
		if f.Month < 1 || f.Month > Pagume || f.Day < 1 || f.Day > 30 {
			errs = append(errs, fmt.Errorf("fixed holiday %q: bad date %d/%d", f.Key, f.Month, f.Day))
		}
	}
	for _, m := range t.Movable {
		checkKey(m.Key, m.Tags)
		if _, ok := t.MovableTewsak[m.Tewsak]; !ok {
			errs = append(errs, fmt.Errorf("movable holiday %q: unknown tewsak %q", m.Key, m.Tewsak))
		}
	}
	for _, h := range t.Islamic {
		checkKey(h.Key, h.Tags)
		if h.HijriMonth < 1 || h.HijriMonth > 12 || h.HijriDay < 1 || h.HijriDay > 30 {
			errs = append(errs, fmt.Errorf("islamic holiday %q: bad hijri date %d/%d", h.Key, h.HijriMonth, h.HijriDay))
		}
	}

	return errors.Join(errs...)
}

func (t *holidayTable) fixed(key string) (fixedHoliday, bool) {
	for _, f := range t.Fixed {
		if f.Key == key {
			return f, true
		}
	}
	return fixedHoliday{}, false
}

func (t *holidayTable) movable(key string) (movableHoliday, bool) {
	for _, m := range t.Movable {
		if m.Key == key {
			return m, true
		}
	}
	return movableHoliday{}, false
}

func (t *holidayTable) islamic(key string) (islamicHoliday, bool) {
	for _, h := range t.Islamic {
		if h.Key == key {
			return h, true
		}
	}
	return islamicHoliday{}, false
}

// HolidayKeys returns every holiday key in table order: fixed, movable
// Christian, then Islamic.
func HolidayKeys() []string {
	keys := make([]string, 0, len(tables.Fixed)+len(tables.Movable)+len(tables.Islamic))
	for _, f := range tables.Fixed {
		keys = append(keys, f.Key)
	}
	for _, m := range tables.Movable {
		keys = append(keys, m.Key)
	}
	for _, h := range tables.Islamic {
		keys = append(keys, h.Key)
	}
	return keys
}
