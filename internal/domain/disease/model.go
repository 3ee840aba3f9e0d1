package disease

import "fmt"

// Category buckets a disease for browsing.
type Category string

const (
	CategoryInfectious     Category = "infectious"
	CategoryChronic        Category = "chronic"
	CategoryRespiratory    Category = "respiratory"
	CategoryDigestive      Category = "digestive"
	CategoryCardiovascular Category = "cardiovascular"
	CategoryOther          Category = "other"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryInfectious, CategoryChronic, CategoryRespiratory,
		CategoryDigestive, CategoryCardiovascular, CategoryOther:
		return Category(s), true
	}
	return "", false
}

// Severity ranks how urgently a disease needs attention.
type Severity string

const (
	SeverityLow       Severity = "low"
	SeverityMedium    Severity = "medium"
	SeverityHigh      Severity = "high"
	SeverityEmergency Severity = "emergency"
)

func ParseSeverity(s string) (Severity, bool) {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityEmergency:
		return Severity(s), true
	}
	return "", false
}

// Translation holds the localized educational content for one language.
type Translation struct {
	Name           string   `json:"name,omitempty"`
	Symptoms       []string `json:"symptoms,omitempty"`
	Prevention     []string `json:"prevention,omitempty"`
	Treatment      []string `json:"treatment,omitempty"`
	WhenToSeekHelp []string `json:"when_to_seek_help,omitempty"`
}

// Info is one disease entry in the reference catalog. The top-level fields
// hold the English content; Translations carries other languages keyed by
// language code.
type Info struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Category       Category               `json:"category"`
	Severity       Severity               `json:"severity"`
	Symptoms       []string               `json:"symptoms"`
	Prevention     []string               `json:"prevention"`
	Treatment      []string               `json:"treatment"`
	WhenToSeekHelp []string               `json:"when_to_seek_help"`
	CommonIn       []string               `json:"common_in"`
	Translations   map[string]Translation `json:"translations,omitempty"`
}

func (d *Info) translation(lang string) (Translation, bool) {
	if lang == "" || lang == "en" {
		return Translation{}, false
	}
	tr, ok := d.Translations[lang]
	return tr, ok
}

// LocalizedName returns the name in lang, falling back to English.
func (d *Info) LocalizedName(lang string) string {
	if tr, ok := d.translation(lang); ok && tr.Name != "" {
		return tr.Name
	}
	return d.Name
}

// Localize returns the content in lang with per-field English fallback.
func (d *Info) Localize(lang string) Translation {
	out := Translation{
		Name:           d.Name,
		Symptoms:       d.Symptoms,
		Prevention:     d.Prevention,
		Treatment:      d.Treatment,
		WhenToSeekHelp: d.WhenToSeekHelp,
	}
	tr, ok := d.translation(lang)
	if !ok {
		return out
	}
	if tr.Name != "" {
		out.Name = tr.Name
	}
	if len(tr.Symptoms) > 0 {
		out.Symptoms = tr.Symptoms
	}
	if len(tr.Prevention) > 0 {
		out.Prevention = tr.Prevention
	}
	if len(tr.Treatment) > 0 {
		out.Treatment = tr.Treatment
	}
	if len(tr.WhenToSeekHelp) > 0 {
		out.WhenToSeekHelp = tr.WhenToSeekHelp
	}
	return out
}

var ErrNotFound = fmt.Errorf("disease not found")
