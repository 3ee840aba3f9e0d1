package vaccination

import (
	"testing"
	"time"
)

func TestLocalizedFields_TranslationPresent(t *testing.T) {
	def, _ := DefaultCatalog().ByID("bcg")
	if got := def.LocalizedName("hi"); got != "बीसीजी" {
		t.Errorf("expected Hindi name, got %q", got)
	}
	if got := def.LocalizedDescription("hi"); got == def.Description {
		t.Error("expected Hindi description, got English")
	}
}

func TestLocalizedFields_EnglishFallback(t *testing.T) {
	def, _ := DefaultCatalog().ByID("bcg")
	if got := def.LocalizedName("or"); got != "BCG" {
		t.Errorf("unknown language should fall back to English, got %q", got)
	}
	if got := def.LocalizedName("en"); got != "BCG" {
		t.Errorf("en should return base name, got %q", got)
	}
	if got := def.LocalizedName(""); got != "BCG" {
		t.Errorf("empty language should return base name, got %q", got)
	}
}

func TestLocalizedFields_PartialTranslation(t *testing.T) {
	def := &VaccineDefinition{
		Name:        "Tetanus",
		Description: "Prevents tetanus",
		SideEffects: []string{"Soreness"},
		Translations: map[string]Translation{
			"hi": {Name: "टिटनेस"}, // only the name is translated
		},
	}
	if got := def.LocalizedName("hi"); got != "टिटनेस" {
		t.Errorf("expected translated name, got %q", got)
	}
	if got := def.LocalizedDescription("hi"); got != "Prevents tetanus" {
		t.Errorf("missing field should fall back independently, got %q", got)
	}
	if got := def.LocalizedSideEffects("hi"); len(got) != 1 || got[0] != "Soreness" {
		t.Errorf("missing list field should fall back independently, got %v", got)
	}
}

func TestLocalize_ResolvesAllFields(t *testing.T) {
	def, _ := DefaultCatalog().ByID("dpt")
	tr := def.Localize("hi")
	if tr.Name == def.Name {
		t.Error("expected translated name")
	}
	if len(tr.SideEffects) != len(def.SideEffects) {
		t.Errorf("expected %d side effects, got %d", len(def.SideEffects), len(tr.SideEffects))
	}
}

func TestIntervalApply(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		iv   Interval
		want string
	}{
		{Interval{Amount: 4, Unit: UnitWeek}, "2024-01-29"},
		{Interval{Amount: 6, Unit: UnitMonth}, "2024-07-01"},
		{Interval{Amount: 10, Unit: UnitYear}, "2034-01-01"},
	}
	for _, tt := range tests {
		if got := tt.iv.Apply(base).Format(DueDateFormat); got != tt.want {
			t.Errorf("%+v: expected %s, got %s", tt.iv, tt.want, got)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "date_given", Reason: "is required"}
	if err.Error() != "date_given: is required" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
