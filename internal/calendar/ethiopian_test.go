package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEthiopianToGregorian(t *testing.T) {
	tests := []struct {
		name string
		eth  EthiopianDate
		greg GregorianDate
	}{
		{"new year 2016", EthiopianDate{2016, 1, 1}, GregorianDate{2023, 9, 12}},
		{"leap pagume 6", EthiopianDate{2015, 13, 6}, GregorianDate{2023, 9, 11}},
		{"new year 2012", EthiopianDate{2012, 1, 1}, GregorianDate{2019, 9, 12}},
		{"new year 2017", EthiopianDate{2017, 1, 1}, GregorianDate{2024, 9, 11}},
		{"gena 2016", EthiopianDate{2016, 4, 28}, GregorianDate{2024, 1, 7}},
		{"last day 2016", EthiopianDate{2016, 13, 5}, GregorianDate{2024, 9, 10}},
		{"year 2000", EthiopianDate{2000, 1, 1}, GregorianDate{2007, 9, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EthiopianToGregorian(tt.eth.Year, tt.eth.Month, tt.eth.Day)
			require.NoError(t, err)
			if got != tt.greg {
				t.Errorf("EthiopianToGregorian(%v) = %v, want %v", tt.eth, got, tt.greg)
			}
		})
	}
}

func TestEthiopianToGregorian_Invalid(t *testing.T) {
	tests := []EthiopianDate{
		{2016, 0, 1},
		{2016, 14, 1},
		{2016, 1, 0},
		{2016, 1, 31},
		{2016, 13, 6}, // 2016 is not a leap year
	}

	for _, d := range tests {
		t.Run(d.String(), func(t *testing.T) {
			_, err := EthiopianToGregorian(d.Year, d.Month, d.Day)
			if !errors.Is(err, ErrInvalidEthiopianDate) {
				t.Errorf("EthiopianToGregorian(%v) error = %v, want ErrInvalidEthiopianDate", d, err)
			}
			var dateErr *InvalidEthiopianDateError
			require.ErrorAs(t, err, &dateErr)
			assert.Equal(t, d.Month, dateErr.Month)
		})
	}
}

func TestGregorianToEthiopian(t *testing.T) {
	tests := []struct {
		name string
		greg GregorianDate
		eth  EthiopianDate
	}{
		{"lower bound", GregorianDate{1900, 1, 1}, EthiopianDate{1892, 4, 23}},
		{"upper bound", GregorianDate{2100, 12, 31}, EthiopianDate{2093, 4, 22}},
		{"day before new year", GregorianDate{2023, 9, 11}, EthiopianDate{2015, 13, 6}},
		{"new year", GregorianDate{2023, 9, 12}, EthiopianDate{2016, 1, 1}},
		{"gena", GregorianDate{2024, 1, 7}, EthiopianDate{2016, 4, 28}},
		{"leap day", GregorianDate{2020, 2, 29}, EthiopianDate{2012, 6, 21}},
		{"pagume 6", GregorianDate{1999, 9, 11}, EthiopianDate{1991, 13, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GregorianToEthiopian(tt.greg.Year, tt.greg.Month, tt.greg.Day)
			require.NoError(t, err)
			if got != tt.eth {
				t.Errorf("GregorianToEthiopian(%v) = %v, want %v", tt.greg, got, tt.eth)
			}
		})
	}
}

func TestGregorianToEthiopian_Invalid(t *testing.T) {
	tests := []struct {
		name string
		greg GregorianDate
	}{
		{"before window", GregorianDate{1899, 12, 31}},
		{"after window", GregorianDate{2101, 1, 1}},
		{"feb 30", GregorianDate{2024, 2, 30}},
		{"feb 29 non leap", GregorianDate{2023, 2, 29}},
		{"month 13", GregorianDate{2024, 13, 1}},
		{"day 0", GregorianDate{2024, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GregorianToEthiopian(tt.greg.Year, tt.greg.Month, tt.greg.Day)
			if !errors.Is(err, ErrInvalidGregorianDate) {
				t.Errorf("GregorianToEthiopian(%v) error = %v, want ErrInvalidGregorianDate", tt.greg, err)
			}
		})
	}
}

// Every Ethiopian day from 1893 to 2090 maps to a Gregorian day in the
// supported window and back to itself.
func TestRoundTrip(t *testing.T) {
	for year := 1893; year <= 2090; year++ {
		for month := Meskerem; month <= Pagume; month++ {
			days, err := DaysInEthiopianMonth(year, month)
			require.NoError(t, err)
			for day := 1; day <= days; day++ {
				g, err := EthiopianToGregorian(year, month, day)
				if err != nil {
					t.Fatalf("EthiopianToGregorian(%d, %d, %d) error: %v", year, month, day, err)
				}
				back, err := GregorianToEthiopian(g.Year, g.Month, g.Day)
				if err != nil {
					t.Fatalf("GregorianToEthiopian(%v) error: %v", g, err)
				}
				if back != (EthiopianDate{year, month, day}) {
					t.Fatalf("round trip %d-%d-%d -> %v -> %v", year, month, day, g, back)
				}
			}
		}
	}
}

func TestGregorianToEthiopian_Consecutive(t *testing.T) {
	// Walk the Gregorian days across two New Years: each step must advance
	// the Ethiopian date by exactly one day.
	start, err := ParseGregorianDate("2023-08-01")
	require.NoError(t, err)

	prev, err := GregorianToEthiopian(start.Year, start.Month, start.Day)
	require.NoError(t, err)

	for i := 1; i < 500; i++ {
		g := GregorianFromTime(start.Time().AddDate(0, 0, i))
		got, err := GregorianToEthiopian(g.Year, g.Month, g.Day)
		require.NoError(t, err)

		want, err := AddDays(prev, 1)
		require.NoError(t, err)
		if got != want {
			t.Fatalf("GregorianToEthiopian(%v) = %v, want %v", g, got, want)
		}
		prev = got
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		from EthiopianDate
		n    int
		want EthiopianDate
	}{
		{"zero", EthiopianDate{2016, 5, 10}, 0, EthiopianDate{2016, 5, 10}},
		{"within month", EthiopianDate{2016, 5, 10}, 5, EthiopianDate{2016, 5, 15}},
		{"into next month", EthiopianDate{2016, 5, 28}, 5, EthiopianDate{2016, 6, 3}},
		{"leap pagume", EthiopianDate{2015, 13, 6}, 1, EthiopianDate{2016, 1, 1}},
		{"short pagume", EthiopianDate{2016, 12, 30}, 6, EthiopianDate{2017, 1, 1}},
		{"nineveh to fasika", EthiopianDate{2016, 6, 18}, 69, EthiopianDate{2016, 8, 27}},
		{"backwards across year", EthiopianDate{2016, 1, 1}, -1, EthiopianDate{2015, 13, 6}},
		{"backwards across month", EthiopianDate{2016, 2, 3}, -5, EthiopianDate{2016, 1, 28}},
		{"full year", EthiopianDate{2016, 1, 1}, 365, EthiopianDate{2017, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.from, tt.n)
			require.NoError(t, err)
			if got != tt.want {
				t.Errorf("AddDays(%v, %d) = %v, want %v", tt.from, tt.n, got, tt.want)
			}
		})
	}

	_, err := AddDays(EthiopianDate{2016, 13, 6}, 1)
	assert.ErrorIs(t, err, ErrInvalidEthiopianDate)
}

func TestParseEthiopianDate(t *testing.T) {
	got, err := ParseEthiopianDate("2016-01-01")
	require.NoError(t, err)
	assert.Equal(t, EthiopianDate{2016, 1, 1}, got)

	got, err = ParseEthiopianDate("2015/13/6")
	require.NoError(t, err)
	assert.Equal(t, EthiopianDate{2015, 13, 6}, got)

	_, err = ParseEthiopianDate("2016-13-06")
	assert.ErrorIs(t, err, ErrInvalidEthiopianDate)

	_, err = ParseEthiopianDate("2016-xx-01")
	assert.ErrorIs(t, err, ErrInvalidInputType)

	_, err = ParseEthiopianDate("2016-01")
	assert.ErrorIs(t, err, ErrInvalidInputType)
}

func TestParseGregorianDate(t *testing.T) {
	got, err := ParseGregorianDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, GregorianDate{2024, 2, 29}, got)

	// Outside the conversion window is still a real date.
	_, err = ParseGregorianDate("1850-06-01")
	assert.NoError(t, err)

	_, err = ParseGregorianDate("2023-02-29")
	assert.ErrorIs(t, err, ErrInvalidGregorianDate)
}
