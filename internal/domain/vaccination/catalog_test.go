package vaccination

import "testing"

func TestNewCatalog_RejectsZeroDoses(t *testing.T) {
	_, err := NewCatalog([]*VaccineDefinition{{ID: "x", Doses: 0}})
	if err == nil {
		t.Fatal("expected error for doses < 1")
	}
}

func TestNewCatalog_RejectsDuplicateID(t *testing.T) {
	_, err := NewCatalog([]*VaccineDefinition{
		{ID: "x", Doses: 1},
		{ID: "x", Doses: 2},
	})
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}
}

func TestNewCatalog_RejectsMissingID(t *testing.T) {
	_, err := NewCatalog([]*VaccineDefinition{{Doses: 1}})
	if err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestCatalog_ByID(t *testing.T) {
	cat := DefaultCatalog()
	def, err := cat.ByID("bcg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Name != "BCG" {
		t.Errorf("expected BCG, got %q", def.Name)
	}
}

func TestCatalog_ByID_NotFound(t *testing.T) {
	cat := DefaultCatalog()
	if _, err := cat.ByID("nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalog_ByAgeGroup_OnlyMatchesInOrder(t *testing.T) {
	cat := DefaultCatalog()
	infants := cat.ByAgeGroup(AgeInfant)
	want := []string{"bcg", "hepatitis-b", "dpt", "polio"}
	if len(infants) != len(want) {
		t.Fatalf("expected %d infant vaccines, got %d", len(want), len(infants))
	}
	for i, id := range want {
		if infants[i].ID != id {
			t.Errorf("position %d: expected %q, got %q", i, id, infants[i].ID)
		}
		if infants[i].AgeGroup != AgeInfant {
			t.Errorf("%q: unexpected age group %q", infants[i].ID, infants[i].AgeGroup)
		}
	}
}

func TestCatalog_Essential(t *testing.T) {
	cat := DefaultCatalog()
	for _, def := range cat.Essential() {
		if def.Importance != ImportanceEssential {
			t.Errorf("%q: expected essential importance, got %q", def.ID, def.Importance)
		}
	}
	if len(cat.Essential()) != 6 {
		t.Errorf("expected 6 essential vaccines, got %d", len(cat.Essential()))
	}
}

func TestCatalog_RequiringBooster(t *testing.T) {
	cat := DefaultCatalog()
	for _, def := range cat.RequiringBooster() {
		if !def.BoosterRequired {
			t.Errorf("%q: booster not required", def.ID)
		}
	}
}

func TestParseSeriesInterval(t *testing.T) {
	tests := []struct {
		text   string
		amount int
		nilRes bool
	}{
		{"", 0, true},
		{"4 weeks apart", 4, false},
		{"3-8 weeks apart (depending on vaccine type)", 8, false},
		{"0, 6, 14 weeks", 14, false},
		{"ask your provider", 4, false}, // unparseable text defaults to 4 weeks
	}
	for _, tt := range tests {
		got := parseSeriesInterval(tt.text)
		if tt.nilRes {
			if got != nil {
				t.Errorf("%q: expected nil interval", tt.text)
			}
			continue
		}
		if got == nil {
			t.Errorf("%q: expected interval, got nil", tt.text)
			continue
		}
		if got.Amount != tt.amount || got.Unit != UnitWeek {
			t.Errorf("%q: expected %d weeks, got %d %s", tt.text, tt.amount, got.Amount, got.Unit)
		}
	}
}

func TestParseBoosterInterval(t *testing.T) {
	tests := []struct {
		text   string
		amount int
		unit   IntervalUnit
		nilRes bool
	}{
		{"16-24 months, then every 10 years", 10, UnitYear, false},
		{"16-24 months", 24, UnitMonth, false},
		{"Every 3 years", 3, UnitYear, false},
		{"Every year", 0, "", true}, // no number, no computable cadence
		{"Recommended annually", 0, "", true},
		{"6 months after primary series", 6, UnitMonth, false},
		{"as advised", 0, "", true},
		{"", 0, "", true},
	}
	for _, tt := range tests {
		got := parseBoosterInterval(tt.text)
		if tt.nilRes {
			if got != nil {
				t.Errorf("%q: expected nil interval", tt.text)
			}
			continue
		}
		if got == nil {
			t.Errorf("%q: expected interval, got nil", tt.text)
			continue
		}
		if got.Amount != tt.amount || got.Unit != tt.unit {
			t.Errorf("%q: expected %d %s, got %d %s", tt.text, tt.amount, tt.unit, got.Amount, got.Unit)
		}
	}
}

func TestDefaultCatalog_ResolvedIntervals(t *testing.T) {
	cat := DefaultCatalog()

	dpt, _ := cat.ByID("dpt")
	if dpt.SeriesInterval == nil || dpt.SeriesInterval.Amount != 4 {
		t.Errorf("dpt: expected 4-week series interval, got %+v", dpt.SeriesInterval)
	}
	if dpt.BoosterInterval == nil || dpt.BoosterInterval.Amount != 10 || dpt.BoosterInterval.Unit != UnitYear {
		t.Errorf("dpt: expected 10-year booster interval, got %+v", dpt.BoosterInterval)
	}

	covid, _ := cat.ByID("covid-19")
	if covid.BoosterInterval == nil || covid.BoosterInterval.Amount != 6 || covid.BoosterInterval.Unit != UnitMonth {
		t.Errorf("covid-19: expected 6-month booster interval, got %+v", covid.BoosterInterval)
	}

	bcg, _ := cat.ByID("bcg")
	if bcg.SeriesInterval != nil {
		t.Errorf("bcg: expected no series interval, got %+v", bcg.SeriesInterval)
	}

	// "Every year" carries no number, so no booster date is computable.
	flu, _ := cat.ByID("influenza")
	if flu.BoosterInterval != nil {
		t.Errorf("influenza: expected no booster interval, got %+v", flu.BoosterInterval)
	}
}
