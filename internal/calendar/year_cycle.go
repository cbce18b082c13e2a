package calendar

// Evangelist names of the four-year cycle. Each Ethiopian year is
// dedicated to one of them; the Luqas year is the leap year.
const (
	Yohannes = "Yohannes"
	Matewos  = "Matewos"
	Markos   = "Markos"
	Luqas    = "Luqas"
)

// evangelistCycle is indexed by AmeteAlem % 4.
var evangelistCycle = [4]string{Yohannes, Matewos, Markos, Luqas}

// Evangelist identifies the evangelist of a year.
type Evangelist struct {
	Name      string `json:"name"`
	Remainder int    `json:"remainder"`            // AmeteAlem % 4
	LocalName string `json:"local_name,omitempty"` // set by GetBahireHasab
}

// GetEvangelist returns the evangelist of the Ethiopian year.
//
// Cycle determination:
//   - AmeteAlem % 4 == 1: Matewos
//   - AmeteAlem % 4 == 2: Markos
//   - AmeteAlem % 4 == 3: Luqas (Pagume has 6 days)
//   - AmeteAlem % 4 == 0: Yohannes
//
// Examples: 2015 is Luqas, 2016 is Yohannes, 2017 is Matewos.
func GetEvangelist(year int) Evangelist {
	remainder := mod(ameteAlem(year), 4)
	return Evangelist{Name: evangelistCycle[remainder], Remainder: remainder}
}

// NewYearInfo describes the weekday on which Meskerem 1 falls.
type NewYearInfo struct {
	Weekday    int `json:"weekday"`     // 0 = Sunday
	TinteQemer int `json:"tinte_qemer"` // (AmeteAlem + MeteneRabiet) % 7
}

// GetNewYear derives the weekday of Enkutatash from the year count alone.
// TinteQemer 0 corresponds to Monday.
func GetNewYear(year int) NewYearInfo {
	aa := ameteAlem(year)
	tinteQemer := mod(aa+floorDiv(aa, 4), 7)
	return NewYearInfo{
		Weekday:    (tinteQemer + 1) % 7,
		TinteQemer: tinteQemer,
	}
}

// ameteAlem counts years since the traditional creation epoch.
func ameteAlem(year int) int {
	return 5500 + year
}

func floorDiv(a, n int) int {
	return (a - mod(a, n)) / n
}
