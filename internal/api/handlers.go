package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/ethiocal/internal/calendar"
	"github.com/zapponejosh/ethiocal/internal/config"
	"github.com/zapponejosh/ethiocal/internal/export"
	"github.com/zapponejosh/ethiocal/internal/locale"
	"github.com/zapponejosh/ethiocal/internal/logger"
	"github.com/zapponejosh/ethiocal/internal/metrics"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	catalog *locale.Catalog
	now     func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *Handlers {
	return &Handlers{
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		catalog: locale.Default(),
		now:     time.Now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// =============================================================================
// Conversions
// =============================================================================

// ConversionResponse pairs the input and output dates of a conversion.
type ConversionResponse struct {
	Ethiopian     calendar.EthiopianDate `json:"ethiopian"`
	Gregorian     calendar.GregorianDate `json:"gregorian"`
	Weekday       int                    `json:"weekday"`
	WeekdayName   string                 `json:"weekday_name"`
	EthiopianText string                 `json:"ethiopian_text"`
}

// ToGregorian handles GET /api/v1/convert/to-gregorian?year&month&day
func (h *Handlers) ToGregorian(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := dateParams(r, "EthiopianToGregorian")
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	g, err := calendar.EthiopianToGregorian(year, month, day)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	h.metrics.Conversions.WithLabelValues("to_gregorian").Inc()

	eth := calendar.EthiopianDate{Year: year, Month: month, Day: day}
	WriteSuccess(w, h.conversion(eth, g, h.lang(r)))
}

// ToEthiopian handles GET /api/v1/convert/to-ethiopian?year&month&day
func (h *Handlers) ToEthiopian(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := dateParams(r, "GregorianToEthiopian")
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	eth, err := calendar.GregorianToEthiopian(year, month, day)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	h.metrics.Conversions.WithLabelValues("to_ethiopian").Inc()

	g := calendar.GregorianDate{Year: year, Month: month, Day: day}
	WriteSuccess(w, h.conversion(eth, g, h.lang(r)))
}

func (h *Handlers) conversion(eth calendar.EthiopianDate, g calendar.GregorianDate, lang locale.Lang) ConversionResponse {
	weekday := int(g.Time().Weekday())
	return ConversionResponse{
		Ethiopian:     eth,
		Gregorian:     g,
		Weekday:       weekday,
		WeekdayName:   h.catalog.WeekdayName(lang, weekday),
		EthiopianText: fmt.Sprintf("%s %d, %d", h.catalog.MonthName(lang, eth.Month), eth.Day, eth.Year),
	}
}

// ToHijri handles GET /api/v1/convert/hijri?date=YYYY-MM-DD
func (h *Handlers) ToHijri(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		WriteBadRequest(w, "date parameter is required")
		return
	}

	g, err := calendar.ParseGregorianDate(dateStr)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	h.metrics.Conversions.WithLabelValues("to_hijri").Inc()

	WriteSuccess(w, map[string]any{
		"gregorian": g,
		"hijri":     calendar.GregorianToHijri(g),
	})
}

// FromHijri handles GET /api/v1/convert/hijri-to-gregorian?year&month&day&target
func (h *Handlers) FromHijri(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := dateParams(r, "HijriToGregorian")
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	target, err := calendar.ParseNumeric("HijriToGregorian", "target", r.URL.Query().Get("target"))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	g, ok := calendar.HijriToGregorian(year, month, day, target)
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Hijri date %d-%02d-%02d does not fall in %d", year, month, day, target))
		return
	}
	h.metrics.Conversions.WithLabelValues("from_hijri").Inc()

	WriteSuccess(w, map[string]any{
		"hijri":     calendar.HijriDate{Year: year, Month: month, Day: day},
		"gregorian": g,
	})
}

// TodayResponse describes the current day.
type TodayResponse struct {
	ConversionResponse
	DayOfYear int                `json:"day_of_year"`
	Holidays  []calendar.Holiday `json:"holidays"`
}

// Today handles GET /api/v1/today
func (h *Handlers) Today(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	g := calendar.GregorianFromTime(h.now())

	eth, err := calendar.GregorianToEthiopian(g.Year, g.Month, g.Day)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	monthHolidays, err := calendar.GetHolidaysInMonth(eth.Year, eth.Month, lang)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	h.metrics.HolidayLookups.WithLabelValues("month").Inc()

	dayOfYear, err := calendar.SeasonDay(eth, calendar.EthiopianDate{Year: eth.Year, Month: calendar.Meskerem, Day: 1})
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	todays := []calendar.Holiday{}
	for _, hol := range monthHolidays {
		if hol.Ethiopian == eth {
			todays = append(todays, hol)
		}
	}

	WriteSuccess(w, TodayResponse{
		ConversionResponse: h.conversion(eth, g, lang),
		DayOfYear:          dayOfYear,
		Holidays:           todays,
	})
}

// =============================================================================
// Bahire Hasab
// =============================================================================

// GetBahireHasab handles GET /api/v1/bahire-hasab/{year}
func (h *Handlers) GetBahireHasab(w http.ResponseWriter, r *http.Request) {
	year, err := calendar.ParseNumeric("GetBahireHasab", "year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	bh, err := calendar.GetBahireHasab(year, h.lang(r))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	h.metrics.HolidayLookups.WithLabelValues("bahire_hasab").Inc()

	WriteSuccess(w, bh)
}

// GetMovable handles GET /api/v1/movable/{key}/{year}
func (h *Handlers) GetMovable(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	year, err := calendar.ParseNumeric("GetMovableHoliday", "year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	eth, err := calendar.GetMovableHoliday(key, year)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	g, err := calendar.EthiopianToGregorian(eth.Year, eth.Month, eth.Day)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	h.metrics.HolidayLookups.WithLabelValues("movable").Inc()

	WriteSuccess(w, map[string]any{
		"key":       key,
		"year":      year,
		"ethiopian": eth,
		"gregorian": g,
	})
}

// =============================================================================
// Holidays
// =============================================================================

// HolidaysResponse lists the holidays of a year or month.
type HolidaysResponse struct {
	Year     int                `json:"year"`
	Month    int                `json:"month,omitempty"`
	Lang     locale.Lang        `json:"lang"`
	Count    int                `json:"count"`
	Holidays []calendar.Holiday `json:"holidays"`
}

// GetHolidaysForYear handles GET /api/v1/holidays/{year}?lang&tags
func (h *Handlers) GetHolidaysForYear(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	holidays, year, ok := h.yearHolidays(w, r, lang)
	if !ok {
		return
	}

	WriteSuccess(w, HolidaysResponse{
		Year:     year,
		Lang:     lang,
		Count:    len(holidays),
		Holidays: holidays,
	})
}

// GetHolidaysInMonth handles GET /api/v1/holidays/{year}/{month}?lang&tags
func (h *Handlers) GetHolidaysInMonth(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)

	year, err := calendar.ParseNumeric("GetHolidaysInMonth", "year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	month, err := calendar.ParseNumeric("GetHolidaysInMonth", "month", chi.URLParam(r, "month"))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	tags, err := parseTags(r.URL.Query().Get("tags"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	holidays, err := calendar.GetHolidaysInMonth(year, month, lang, tags...)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	h.metrics.HolidayLookups.WithLabelValues("month").Inc()

	WriteSuccess(w, HolidaysResponse{
		Year:     year,
		Month:    month,
		Lang:     lang,
		Count:    len(holidays),
		Holidays: nonNil(holidays),
	})
}

// GetHoliday handles GET /api/v1/holiday/{key}/{year}?lang
func (h *Handlers) GetHoliday(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !slices.Contains(calendar.HolidayKeys(), key) {
		h.writeCalendarError(w, r, &calendar.UnknownHolidayError{Key: key})
		return
	}

	year, err := calendar.ParseNumeric("GetHoliday", "year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	holiday, err := calendar.GetHoliday(key, year, h.lang(r))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	h.metrics.HolidayLookups.WithLabelValues("holiday").Inc()

	if holiday == nil {
		WriteNotFound(w, fmt.Sprintf("%s does not occur in %d", key, year))
		return
	}
	WriteSuccess(w, holiday)
}

// ExportICS handles GET /api/v1/holidays/{year}/export.ics
func (h *Handlers) ExportICS(w http.ResponseWriter, r *http.Request) {
	holidays, year, ok := h.yearHolidays(w, r, h.lang(r))
	if !ok {
		return
	}

	body, err := export.ICS(year, holidays, h.now())
	if err != nil {
		logger.Error(r.Context(), "failed to export calendar", err, slog.Int("year", year))
		WriteInternalError(w, "Failed to export holidays")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="holidays-%d.ics"`, year))
	w.Write(body)
}

// ExportCSV handles GET /api/v1/holidays/{year}/export.csv
func (h *Handlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	holidays, year, ok := h.yearHolidays(w, r, h.lang(r))
	if !ok {
		return
	}

	body, err := export.CSV(holidays)
	if err != nil {
		logger.Error(r.Context(), "failed to export csv", err, slog.Int("year", year))
		WriteInternalError(w, "Failed to export holidays")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="holidays-%d.csv"`, year))
	w.Write([]byte(body))
}

// yearHolidays resolves the {year} and ?tags parameters shared by the
// year listing and the exports. On failure the error response has already
// been written and ok is false.
func (h *Handlers) yearHolidays(w http.ResponseWriter, r *http.Request, lang locale.Lang) (holidays []calendar.Holiday, year int, ok bool) {
	year, err := calendar.ParseNumeric("GetHolidaysForYear", "year", chi.URLParam(r, "year"))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return nil, 0, false
	}
	tags, err := parseTags(r.URL.Query().Get("tags"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return nil, 0, false
	}

	holidays, err = calendar.GetHolidaysForYear(year, lang, tags...)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return nil, 0, false
	}
	h.metrics.HolidayLookups.WithLabelValues("year").Inc()

	return nonNil(holidays), year, true
}

// =============================================================================
// Helpers
// =============================================================================

// lang picks the response language: ?lang first, then Accept-Language,
// then the configured default. Unsupported values fall through.
func (h *Handlers) lang(r *http.Request) locale.Lang {
	if lang, ok := locale.ParseLang(r.URL.Query().Get("lang")); ok {
		return lang
	}
	if lang, ok := locale.ParseAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return lang
	}
	return h.cfg.Lang()
}

// writeCalendarError maps calendar errors to their status and code.
// Anything unrecognized is logged and reported as a 500.
func (h *Handlers) writeCalendarError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, ok := calendarErrorStatus(err)
	if !ok {
		h.logger.ErrorContext(r.Context(), "calendar request failed",
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
			slog.String("request_id", logger.RequestID(r.Context())),
		)
		WriteInternalError(w, "Internal server error")
		return
	}
	h.metrics.CalendarErrors.WithLabelValues(code).Inc()
	WriteError(w, status, err.Error(), code)
}

// dateParams reads the year, month and day query parameters for funcName.
func dateParams(r *http.Request, funcName string) (year, month, day int, err error) {
	q := r.URL.Query()
	if year, err = calendar.ParseNumeric(funcName, "year", q.Get("year")); err != nil {
		return 0, 0, 0, err
	}
	if month, err = calendar.ParseNumeric(funcName, "month", q.Get("month")); err != nil {
		return 0, 0, 0, err
	}
	if day, err = calendar.ParseNumeric(funcName, "day", q.Get("day")); err != nil {
		return 0, 0, 0, err
	}
	return year, month, day, nil
}

// parseTags splits a comma separated tag filter. Empty input means no filter.
func parseTags(raw string) ([]calendar.Tag, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var tags []calendar.Tag
	for _, part := range strings.Split(raw, ",") {
		tag := calendar.Tag(strings.ToLower(strings.TrimSpace(part)))
		if tag == "" {
			continue
		}
		if !tag.IsValid() {
			return nil, fmt.Errorf("unknown tag %q", part)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func nonNil(holidays []calendar.Holiday) []calendar.Holiday {
	if holidays == nil {
		return []calendar.Holiday{}
	}
	return holidays
}
