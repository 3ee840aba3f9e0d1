package vaccination

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AgeGroup is the life-stage bucket a vaccine is scheduled for.
type AgeGroup string

const (
	AgeInfant     AgeGroup = "infant"
	AgeChild      AgeGroup = "child"
	AgeAdolescent AgeGroup = "adolescent"
	AgeAdult      AgeGroup = "adult"
	AgeElderly    AgeGroup = "elderly"
)

// ParseAgeGroup maps a query-string value to an AgeGroup.
func ParseAgeGroup(s string) (AgeGroup, bool) {
	switch AgeGroup(s) {
	case AgeInfant, AgeChild, AgeAdolescent, AgeAdult, AgeElderly:
		return AgeGroup(s), true
	}
	return "", false
}

// Importance classifies display emphasis; it never drives schedule computation.
type Importance string

const (
	ImportanceEssential   Importance = "essential"
	ImportanceRecommended Importance = "recommended"
	ImportanceOptional    Importance = "optional"
)

// IntervalUnit is the calendar unit of a structured dose interval.
type IntervalUnit string

const (
	UnitWeek  IntervalUnit = "week"
	UnitMonth IntervalUnit = "month"
	UnitYear  IntervalUnit = "year"
)

// Interval is the machine-usable form of a free-text interval description,
// resolved once when the catalog is built. The free text stays around only as
// a display label.
type Interval struct {
	Amount int          `json:"amount"`
	Unit   IntervalUnit `json:"unit"`
}

// Apply advances t by the interval using calendar arithmetic.
func (iv Interval) Apply(t time.Time) time.Time {
	switch iv.Unit {
	case UnitWeek:
		return t.AddDate(0, 0, iv.Amount*7)
	case UnitMonth:
		return t.AddDate(0, iv.Amount, 0)
	default:
		return t.AddDate(iv.Amount, 0, 0)
	}
}

// Translation holds the localizable fields of a vaccine definition. Partial
// translations are allowed; absent fields fall back to English per field.
type Translation struct {
	Name              string   `json:"name,omitempty"`
	Description       string   `json:"description,omitempty"`
	SideEffects       []string `json:"side_effects,omitempty"`
	Contraindications []string `json:"contraindications,omitempty"`
}

// VaccineDefinition is one immutable catalog entry.
type VaccineDefinition struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	AgeGroup          AgeGroup               `json:"age_group"`
	ScheduledAge      string                 `json:"scheduled_age"`
	Description       string                 `json:"description"`
	Doses             int                    `json:"doses"`
	IntervalText      string                 `json:"interval,omitempty"`
	BoosterRequired   bool                   `json:"booster_required"`
	BoosterText       string                 `json:"booster_interval,omitempty"`
	SideEffects       []string               `json:"side_effects"`
	Contraindications []string               `json:"contraindications"`
	Importance        Importance             `json:"importance"`
	Translations      map[string]Translation `json:"translations,omitempty"`

	// Resolved from IntervalText / BoosterText by NewCatalog. Nil when the
	// source text carries no usable pattern.
	SeriesInterval  *Interval `json:"-"`
	BoosterInterval *Interval `json:"-"`
}

// LocalizedName returns the translated vaccine name, or the English name when
// the language is "en" or the translation is missing.
func (v *VaccineDefinition) LocalizedName(lang string) string {
	if t, ok := v.translation(lang); ok && t.Name != "" {
		return t.Name
	}
	return v.Name
}

// LocalizedDescription returns the translated description with English fallback.
func (v *VaccineDefinition) LocalizedDescription(lang string) string {
	if t, ok := v.translation(lang); ok && t.Description != "" {
		return t.Description
	}
	return v.Description
}

// LocalizedSideEffects returns the translated side-effect list with English fallback.
func (v *VaccineDefinition) LocalizedSideEffects(lang string) []string {
	if t, ok := v.translation(lang); ok && len(t.SideEffects) > 0 {
		return t.SideEffects
	}
	return v.SideEffects
}

// LocalizedContraindications returns the translated contraindication list with
// English fallback.
func (v *VaccineDefinition) LocalizedContraindications(lang string) []string {
	if t, ok := v.translation(lang); ok && len(t.Contraindications) > 0 {
		return t.Contraindications
	}
	return v.Contraindications
}

// Localize resolves every localizable field for lang, applying the English
// fallback independently per field.
func (v *VaccineDefinition) Localize(lang string) Translation {
	return Translation{
		Name:              v.LocalizedName(lang),
		Description:       v.LocalizedDescription(lang),
		SideEffects:       v.LocalizedSideEffects(lang),
		Contraindications: v.LocalizedContraindications(lang),
	}
}

func (v *VaccineDefinition) translation(lang string) (Translation, bool) {
	if lang == "" || lang == "en" {
		return Translation{}, false
	}
	t, ok := v.Translations[lang]
	return t, ok
}

// DoseRecord is one administered dose. Records are append-only and live in
// session memory for as long as the owning session does.
type DoseRecord struct {
	ID          uuid.UUID `json:"id"`
	VaccineID   string    `json:"vaccine_id"`
	DateGiven   time.Time `json:"date_given"`
	DoseNumber  int       `json:"dose_number"`
	Location    string    `json:"location,omitempty"`
	BatchNumber string    `json:"batch_number,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidationError rejects a record submission. The caller is expected to
// re-prompt; nothing about it is fatal.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ErrNotFound signals a lookup miss on the catalog.
var ErrNotFound = fmt.Errorf("vaccine not found")
