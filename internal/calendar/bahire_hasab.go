package calendar

import (
	"github.com/zapponejosh/ethiocal/internal/locale"
)

// BahireHasabBase holds the base values of the Bahire Hasab computation for
// one Ethiopian year. It is derived from the year on every call.
type BahireHasabBase struct {
	AmeteAlem         int           `json:"amete_alem"`
	MeteneRabiet      int           `json:"metene_rabiet"`
	Medeb             int           `json:"medeb"`
	Wenber            int           `json:"wenber"`
	Abektie           int           `json:"abektie"`
	Metqi             int           `json:"metqi"`
	BealeMetqiDate    EthiopianDate `json:"beale_metqi_date"`
	BealeMetqiWeekday string        `json:"beale_metqi_weekday"`
	MebajaHamer       int           `json:"mebaja_hamer"`
	NinevehDate       EthiopianDate `json:"nineveh_date"`
}

// ComputeBahireHasabBase calculates the base values for the Ethiopian year.
//
// Medeb is the position in the 19-year lunar cycle; Wenber, Abektie (epact)
// and Metqi follow from it. Beale Metqi falls in Meskerem when Metqi > 14,
// otherwise in Tikimt, and the tewsak of its weekday locates Mebaja Hamer,
// the day of the Nineveh fast from which every movable feast is counted.
func ComputeBahireHasabBase(year int) BahireHasabBase {
	aa := ameteAlem(year)
	medeb := mod(aa, 19)
	wenber := medeb - 1
	if medeb == 0 {
		wenber = 18
	}
	metqi := (wenber * 19) % 30

	bealeMetqi := EthiopianDate{Year: year, Month: Tikimt, Day: metqi}
	if metqi > 14 {
		bealeMetqi.Month = Meskerem
	}
	// Metqi 0 is Tikimt 0, the day before Tikimt 1.
	if metqi == 0 {
		bealeMetqi = EthiopianDate{Year: year, Month: Meskerem, Day: 30}
	}

	offset := (bealeMetqi.Month-1)*30 + bealeMetqi.Day - 1
	weekday := WeekdayName(int(newYearAnchor(year).AddDate(0, 0, offset).Weekday()))
	tewsak := tables.WeekdayTewsak[weekday]

	sum := metqi + tewsak
	mebajaHamer := sum
	if sum > 30 {
		mebajaHamer = sum % 30
	}

	ninevehMonth := Yekatit
	if metqi > 14 {
		ninevehMonth = Tir
	}
	if sum > 30 {
		ninevehMonth++
	}

	return BahireHasabBase{
		AmeteAlem:         aa,
		MeteneRabiet:      floorDiv(aa, 4),
		Medeb:             medeb,
		Wenber:            wenber,
		Abektie:           (wenber * 11) % 30,
		Metqi:             metqi,
		BealeMetqiDate:    bealeMetqi,
		BealeMetqiWeekday: weekday,
		MebajaHamer:       mebajaHamer,
		NinevehDate:       EthiopianDate{Year: year, Month: ninevehMonth, Day: mebajaHamer},
	}
}

// movableTewsak resolves a movable feast key to its offset from Nineveh.
// Both tewsak keys (TINSAYE) and holiday keys (fasika) are accepted.
func movableTewsak(key string) (int, bool) {
	if days, ok := tables.MovableTewsak[key]; ok {
		return days, true
	}
	if m, ok := tables.movable(key); ok {
		return tables.MovableTewsak[m.Tewsak], true
	}
	return 0, false
}

// GetMovableHoliday returns the date of a movable feast in the Ethiopian year.
func GetMovableHoliday(key string, year int) (EthiopianDate, error) {
	days, ok := movableTewsak(key)
	if !ok {
		return EthiopianDate{}, &UnknownHolidayError{Key: key}
	}
	return AddDays(ComputeBahireHasabBase(year).NinevehDate, days)
}

// BahireHasab is the full computation for a year: the base values, the
// evangelist and New Year weekday, and every movable feast.
type BahireHasab struct {
	BahireHasabBase
	Evangelist    Evangelist  `json:"evangelist"`
	NewYear       NewYearInfo `json:"new_year"`
	MovableFeasts []Holiday   `json:"movable_feasts"`
}

// GetBahireHasab computes the full Bahire Hasab record, with feast and
// evangelist names in lang.
func GetBahireHasab(year int, lang locale.Lang) (BahireHasab, error) {
	bh := BahireHasab{
		BahireHasabBase: ComputeBahireHasabBase(year),
		Evangelist:      GetEvangelist(year),
		NewYear:         GetNewYear(year),
	}
	bh.Evangelist.LocalName = locale.Default().EvangelistName(lang, bh.Evangelist.Name)

	for _, m := range tables.Movable {
		h, err := movableChristianHoliday(m, year, lang)
		if err != nil {
			return BahireHasab{}, err
		}
		bh.MovableFeasts = append(bh.MovableFeasts, h)
	}
	return bh, nil
}
