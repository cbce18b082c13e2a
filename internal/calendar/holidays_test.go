package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/ethiocal/internal/locale"
)

func holidayKeys(holidays []Holiday) []string {
	keys := make([]string, len(holidays))
	for i, h := range holidays {
		keys[i] = h.Key
	}
	return keys
}

func TestGetHoliday_Fixed(t *testing.T) {
	h, err := GetHoliday("enkutatash", 2016, locale.English)
	require.NoError(t, err)
	require.NotNil(t, h)

	assert.Equal(t, EthiopianDate{2016, 1, 1}, h.Ethiopian)
	assert.False(t, h.Movable)
	assert.Nil(t, h.Gregorian)
	assert.Equal(t, "Ethiopian New Year", h.Name)
	assert.NotEmpty(t, h.Description)
	assert.ElementsMatch(t, []Tag{TagPublic, TagCultural}, h.Tags)
}

func TestGetHoliday_GenaFollowsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		day  int
		greg GregorianDate
	}{
		{2016, 28, GregorianDate{2024, 1, 7}}, // 2015 was a leap year
		{2017, 29, GregorianDate{2025, 1, 7}},
		{2012, 28, GregorianDate{2020, 1, 7}},
	}

	for _, tt := range tests {
		h, err := GetHoliday("gena", tt.year, locale.Amharic)
		require.NoError(t, err)
		require.NotNil(t, h)

		if h.Ethiopian.Day != tt.day || h.Ethiopian.Month != Tahsas {
			t.Errorf("gena %d = %v, want Tahsas %d", tt.year, h.Ethiopian, tt.day)
		}
		g, err := EthiopianToGregorian(h.Ethiopian.Year, h.Ethiopian.Month, h.Ethiopian.Day)
		require.NoError(t, err)
		assert.Equal(t, tt.greg, g)
	}
}

func TestGetHoliday_Timket(t *testing.T) {
	h, err := GetHoliday("timket", 2016, locale.Amharic)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, EthiopianDate{2016, Tir, 11}, h.Ethiopian)
	assert.Equal(t, "ጥምቀት", h.Name)

	g, err := EthiopianToGregorian(h.Ethiopian.Year, h.Ethiopian.Month, h.Ethiopian.Day)
	require.NoError(t, err)
	assert.Equal(t, GregorianDate{2024, 1, 20}, g)
}

func TestGetHoliday_Movable(t *testing.T) {
	h, err := GetHoliday("fasika", 2016, locale.Amharic)
	require.NoError(t, err)
	require.NotNil(t, h)

	assert.True(t, h.Movable)
	assert.Equal(t, EthiopianDate{2016, Miazia, 27}, h.Ethiopian)
	require.NotNil(t, h.Gregorian)
	assert.Equal(t, GregorianDate{2024, 5, 5}, *h.Gregorian)
	assert.Equal(t, "ፋሲካ", h.Name)
}

func TestGetHoliday_Islamic(t *testing.T) {
	tests := []struct {
		key  string
		eth  EthiopianDate
		greg GregorianDate
	}{
		{"moulid", EthiopianDate{2016, Meskerem, 16}, GregorianDate{2023, 9, 27}},
		{"eidFitr", EthiopianDate{2016, Miazia, 2}, GregorianDate{2024, 4, 10}},
		{"eidAdha", EthiopianDate{2016, Sene, 10}, GregorianDate{2024, 6, 17}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			h, err := GetHoliday(tt.key, 2016, locale.English)
			require.NoError(t, err)
			require.NotNil(t, h)

			assert.True(t, h.Movable)
			assert.Equal(t, tt.eth, h.Ethiopian)
			require.NotNil(t, h.Gregorian)
			assert.Equal(t, tt.greg, *h.Gregorian)
			assert.Contains(t, h.Tags, TagMuslim)
		})
	}
}

func TestGetHoliday_Unknown(t *testing.T) {
	h, err := GetHoliday("notAHoliday", 2016, locale.English)
	assert.NoError(t, err)
	assert.Nil(t, h)
}

func TestFindAllIslamicOccurrences(t *testing.T) {
	got := FindAllIslamicOccurrences(2017, 3, 12)
	require.Len(t, got, 2)

	assert.Equal(t, EthiopianDate{2017, Meskerem, 6}, got[0].Ethiopian)
	assert.Equal(t, GregorianDate{2024, 9, 16}, got[0].Gregorian)
	assert.Equal(t, EthiopianDate{2017, Nehasse, 30}, got[1].Ethiopian)
	assert.Equal(t, GregorianDate{2025, 9, 5}, got[1].Gregorian)

	// GetHoliday reports the first.
	h, err := GetHoliday("moulid", 2017, locale.English)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, EthiopianDate{2017, Meskerem, 6}, h.Ethiopian)
}

func TestFindAllIslamicOccurrences_InYear(t *testing.T) {
	for year := 1893; year <= 2091; year++ {
		for _, hd := range [][2]int{{3, 12}, {10, 1}, {12, 10}} {
			occurrences := FindAllIslamicOccurrences(year, hd[0], hd[1])
			if len(occurrences) == 0 || len(occurrences) > 2 {
				t.Fatalf("year %d hijri %v: %d occurrences", year, hd, len(occurrences))
			}
			for _, occ := range occurrences {
				if occ.Ethiopian.Year != year {
					t.Fatalf("year %d hijri %v: occurrence in %d", year, hd, occ.Ethiopian.Year)
				}
				h := GregorianToHijri(occ.Gregorian)
				if h.Month != hd[0] || h.Day != hd[1] {
					t.Fatalf("year %d: %v is hijri %v, want %v", year, occ.Gregorian, h, hd)
				}
			}
		}
	}
}

func TestGetHolidaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  []string
	}{
		{"meskerem 2016", 2016, Meskerem, []string{"enkutatash", "moulid", "meskel"}},
		{"miazia 2016", 2016, Miazia, []string{"eidFitr", "hosanna", "labour", "siklet", "patriots", "fasika"}},
		{"nehasse 2017", 2017, Nehasse, []string{"moulid"}},
		{"pagume 2016", 2016, Pagume, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetHolidaysInMonth(tt.year, tt.month, locale.English)
			require.NoError(t, err)
			assert.Equal(t, tt.want, holidayKeys(got))
			for _, h := range got {
				assert.Equal(t, tt.month, h.Ethiopian.Month)
			}
		})
	}
}

func TestGetHolidaysInMonth_InvalidMonth(t *testing.T) {
	for _, month := range []int{0, 14} {
		_, err := GetHolidaysInMonth(2016, month, locale.English)
		if !errors.Is(err, ErrInvalidInputType) {
			t.Errorf("GetHolidaysInMonth(2016, %d) error = %v, want ErrInvalidInputType", month, err)
		}
	}
}

func TestGetHolidaysInMonth_Filter(t *testing.T) {
	got, err := GetHolidaysInMonth(2016, Miazia, locale.English, TagState)
	require.NoError(t, err)
	assert.Equal(t, []string{"labour", "patriots"}, holidayKeys(got))

	got, err = GetHolidaysInMonth(2016, Miazia, locale.English, TagMuslim, TagState)
	require.NoError(t, err)
	assert.Equal(t, []string{"eidFitr", "labour", "patriots"}, holidayKeys(got))
}

func TestGetHolidaysForYear(t *testing.T) {
	got, err := GetHolidaysForYear(2016, locale.English)
	require.NoError(t, err)
	assert.Len(t, got, 24)

	for i := 1; i < len(got); i++ {
		if got[i].Ethiopian.Before(got[i-1].Ethiopian) {
			t.Fatalf("holidays not sorted: %v before %v", got[i-1].Ethiopian, got[i].Ethiopian)
		}
	}
	for _, h := range got {
		assert.Equal(t, 2016, h.Ethiopian.Year, h.Key)
		assert.Equal(t, h.Movable, h.Gregorian != nil, h.Key)
	}

	got, err = GetHolidaysForYear(2017, locale.English)
	require.NoError(t, err)
	assert.Len(t, got, 25)

	moulids := 0
	for _, h := range got {
		if h.Key == "moulid" {
			moulids++
		}
	}
	assert.Equal(t, 2, moulids)
}

func TestGetHolidaysForYear_PublicOnly(t *testing.T) {
	got, err := GetHolidaysForYear(2016, locale.English, TagPublic)
	require.NoError(t, err)

	for _, h := range got {
		assert.Contains(t, h.Tags, TagPublic, h.Key)
	}
	assert.NotContains(t, holidayKeys(got), "nineveh")
	assert.Contains(t, holidayKeys(got), "fasika")
}

func TestHolidayKeys(t *testing.T) {
	keys := HolidayKeys()
	assert.Len(t, keys, 24)
	assert.Equal(t, "enkutatash", keys[0])
	assert.Equal(t, "eidAdha", keys[len(keys)-1])

	for _, key := range keys {
		h, err := GetHoliday(key, 2016, locale.English)
		require.NoError(t, err)
		assert.NotNil(t, h, key)
	}
}

func TestLoadHolidayTable_Invalid(t *testing.T) {
	data := []byte(`
[weekday_tewsak]
Sunday = 7

[movable_tewsak]
NINEVEH = 0

[[fixed]]
key = "a"
month = 14
day = 1
tags = ["public"]

[[fixed]]
key = "a"
month = 1
day = 1
tags = ["holy"]

[[movable]]
key = "b"
tewsak = "MISSING"
`)
	_, err := loadHolidayTable(data)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "missing Monday")
	assert.Contains(t, msg, "bad date 14/1")
	assert.Contains(t, msg, `duplicate holiday key "a"`)
	assert.Contains(t, msg, `unknown tag "holy"`)
	assert.Contains(t, msg, `unknown tewsak "MISSING"`)
}

func TestLoadHolidayTable_Embedded(t *testing.T) {
	table, err := loadHolidayTable(holidayTOML)
	require.NoError(t, err)

	assert.Len(t, table.Fixed, 10)
	assert.Len(t, table.Movable, 11)
	assert.Len(t, table.Islamic, 3)
	assert.Equal(t, 69, table.MovableTewsak["TINSAYE"])
	assert.Equal(t, 8, table.WeekdayTewsak["Saturday"])
}
