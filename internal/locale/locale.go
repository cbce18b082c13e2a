// Package locale holds the localized names of holidays, months, weekdays
// and evangelists. Amharic is the default language; English is the only
// other supported language.
package locale

import (
	"embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Lang identifies a supported language.
type Lang string

const (
	Amharic Lang = "am"
	English Lang = "en"
)

// DefaultLang is used when no language, or an unsupported one, is requested.
const DefaultLang = Amharic

var supported = []language.Tag{language.Amharic, language.English}

var matcher = language.NewMatcher(supported)

// Supported returns every supported language, default first.
func Supported() []Lang {
	return []Lang{Amharic, English}
}

// IsValid reports whether l is a supported language.
func (l Lang) IsValid() bool {
	return l == Amharic || l == English
}

func (l Lang) String() string { return string(l) }

// Tag returns the BCP 47 tag of l.
func (l Lang) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Amharic
}

// ParseLang maps a user supplied language to a supported one. It accepts
// the codes am and en, the words amharic and english, and any BCP 47 tag
// that matches them (en-US, am-ET). Anything else yields DefaultLang and
// ok is false, so callers can fall back to a default of their own.
func ParseLang(s string) (lang Lang, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultLang, false
	case "am", "amharic":
		return Amharic, true
	case "en", "english":
		return English, true
	}

	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLang, false
	}
	return match(tag)
}

// ParseAcceptLanguage picks the best supported language for an HTTP
// Accept-Language header. ok is false when nothing in the header matches.
func ParseAcceptLanguage(header string) (lang Lang, ok bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLang, false
	}
	return match(tags...)
}

func match(tags ...language.Tag) (Lang, bool) {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLang, false
	}
	if supported[index] == language.English {
		return English, true
	}
	return Amharic, true
}

// Catalog resolves message IDs to localized text.
type Catalog struct {
	bundle     *i18n.Bundle
	localizers map[Lang]*i18n.Localizer
}

// NewCatalog loads the embedded message files.
func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(DefaultLang.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
	}

	c := &Catalog{
		bundle:     bundle,
		localizers: make(map[Lang]*i18n.Localizer),
	}
	for _, l := range Supported() {
		c.localizers[l] = i18n.NewLocalizer(bundle, l.String(), DefaultLang.String())
	}
	return c, nil
}

var defaultCatalog = mustCatalog()

func mustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(fmt.Sprintf("locale: embedded catalog: %v", err))
	}
	return c
}

// Default returns the catalog built from the embedded message files.
func Default() *Catalog {
	return defaultCatalog
}

// Message translates id into lang. A message missing in lang falls back to
// Amharic, and a message missing everywhere yields id itself.
func (c *Catalog) Message(lang Lang, id string) string {
	localizer, ok := c.localizers[lang]
	if !ok {
		localizer = c.localizers[DefaultLang]
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// HolidayName returns the display name of a holiday key.
func (c *Catalog) HolidayName(lang Lang, key string) string {
	return c.Message(lang, key+"_name")
}

// HolidayDescription returns the one-line description of a holiday key.
func (c *Catalog) HolidayDescription(lang Lang, key string) string {
	return c.Message(lang, key+"_description")
}

// MonthName returns the name of Ethiopian month 1..13.
func (c *Catalog) MonthName(lang Lang, month int) string {
	return c.Message(lang, fmt.Sprintf("month_%d", month))
}

// WeekdayName returns the name of a weekday, 0 = Sunday.
func (c *Catalog) WeekdayName(lang Lang, weekday int) string {
	return c.Message(lang, fmt.Sprintf("weekday_%d", weekday))
}

// EvangelistName returns the localized name of an evangelist of the
// four-year cycle (Yohannes, Matewos, Markos, Luqas).
func (c *Catalog) EvangelistName(lang Lang, name string) string {
	return c.Message(lang, "evangelist_"+name)
}
