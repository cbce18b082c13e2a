package export

import (
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/zapponejosh/ethiocal/internal/calendar"
)

// HolidayRow is one CSV record.
type HolidayRow struct {
	Key         string `csv:"key"`
	Name        string `csv:"name"`
	Ethiopian   string `csv:"ethiopian_date"`
	Gregorian   string `csv:"gregorian_date"`
	Movable     bool   `csv:"movable"`
	Tags        string `csv:"tags"`
	Description string `csv:"description"`
}

// Rows flattens holidays into CSV records. Tags are joined with ";".
func Rows(holidays []calendar.Holiday) ([]*HolidayRow, error) {
	rows := make([]*HolidayRow, 0, len(holidays))
	for _, h := range holidays {
		g, err := gregorianOf(h)
		if err != nil {
			return nil, fmt.Errorf("holiday %s: %w", h.Key, err)
		}
		rows = append(rows, &HolidayRow{
			Key:         h.Key,
			Name:        h.Name,
			Ethiopian:   h.Ethiopian.String(),
			Gregorian:   g.String(),
			Movable:     h.Movable,
			Tags:        joinTags(h.Tags, ";"),
			Description: h.Description,
		})
	}
	return rows, nil
}

// CSV renders holidays with a header row.
func CSV(holidays []calendar.Holiday) (string, error) {
	rows, err := Rows(holidays)
	if err != nil {
		return "", err
	}
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("encode csv: %w", err)
	}
	return out, nil
}
