// Package export renders resolved holidays as iCalendar feeds and CSV.
package export

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/zapponejosh/ethiocal/internal/calendar"
)

// iCalendar property names and fixed values.
const (
	propUID         = "UID"
	propSummary     = "SUMMARY"
	propDescription = "DESCRIPTION"
	propCategories  = "CATEGORIES"
	propDTStart     = "DTSTART"
	propDTEnd       = "DTEND"
	propDTStamp     = "DTSTAMP"
	propVersion     = "VERSION"
	propProdID      = "PRODID"
	propCalName     = "X-WR-CALNAME"
	propCalScale    = "CALSCALE"
	propMethod      = "METHOD"
	propEthDate     = "X-ETHIOPIAN-DATE"

	icalVersion = "2.0"
	icalProdID  = "-//ethiocal//Ethiopian Holidays//EN"
	icalScale   = "GREGORIAN"
	icalMethod  = "PUBLISH"
	icalDomain  = "ethiocal"
	uidHashLen  = 8
)

// emptyCalendar is returned when there is nothing to encode; the encoder
// rejects a VCALENDAR without components.
const emptyCalendar = "BEGIN:VCALENDAR\r\nVERSION:" + icalVersion + "\r\nPRODID:" + icalProdID + "\r\nEND:VCALENDAR\r\n"

// ICS renders the holidays of an Ethiopian year as all-day events.
//
// UIDs derive from the holiday key and Ethiopian date, so re-exporting the
// same year yields the same events. stamp becomes every DTSTAMP.
func ICS(year int, holidays []calendar.Holiday, stamp time.Time) ([]byte, error) {
	if len(holidays) == 0 {
		return []byte(emptyCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(propVersion, icalVersion)
	cal.Props.SetText(propProdID, icalProdID)
	calName := ical.NewProp(propCalName)
	calName.Value = fmt.Sprintf("Ethiopian holidays %d", year)
	cal.Props.Set(calName)
	cal.Props.SetText(propCalScale, icalScale)
	cal.Props.SetText(propMethod, icalMethod)

	dtStamp := ical.NewProp(propDTStamp)
	dtStamp.SetDateTime(stamp.UTC())

	for _, h := range holidays {
		event, err := holidayEvent(h)
		if err != nil {
			return nil, err
		}
		event.Props.Set(dtStamp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func holidayEvent(h calendar.Holiday) (*ical.Event, error) {
	g, err := gregorianOf(h)
	if err != nil {
		return nil, fmt.Errorf("holiday %s: %w", h.Key, err)
	}

	event := ical.NewEvent()
	event.Props.SetText(propUID, eventUID(h))
	event.Props.SetText(propSummary, h.Name)
	if h.Description != "" {
		event.Props.SetText(propDescription, h.Description)
	}
	ethDate := ical.NewProp(propEthDate)
	ethDate.Value = h.Ethiopian.String()
	event.Props.Set(ethDate)

	if len(h.Tags) > 0 {
		categories := ical.NewProp(propCategories)
		categories.Value = strings.ToUpper(joinTags(h.Tags, ","))
		event.Props.Set(categories)
	}

	start := ical.NewProp(propDTStart)
	start.SetDate(g.Time())
	event.Props.Set(start)

	end := ical.NewProp(propDTEnd)
	end.SetDate(g.Time().AddDate(0, 0, 1))
	event.Props.Set(end)

	return event, nil
}

// eventUID hashes the key and Ethiopian date into a stable identifier.
func eventUID(h calendar.Holiday) string {
	sum := sha256.Sum256([]byte(h.Key + "|" + h.Ethiopian.String()))
	return fmt.Sprintf("%x@%s", sum[:uidHashLen], icalDomain)
}

// gregorianOf returns the holiday's Gregorian date. Fixed holidays carry
// none, so it is computed from the Ethiopian date.
func gregorianOf(h calendar.Holiday) (calendar.GregorianDate, error) {
	if h.Gregorian != nil {
		return *h.Gregorian, nil
	}
	return calendar.EthiopianToGregorian(h.Ethiopian.Year, h.Ethiopian.Month, h.Ethiopian.Day)
}

func joinTags(tags []calendar.Tag, sep string) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, sep)
}
