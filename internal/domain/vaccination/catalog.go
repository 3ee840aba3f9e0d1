package vaccination

import (
	"fmt"
	"regexp"
	"strconv"
)

// Catalog is the read-only set of vaccine definitions. Query results always
// come back in insertion order.
type Catalog struct {
	defs []*VaccineDefinition
	byID map[string]*VaccineDefinition
}

// NewCatalog validates the definitions, resolves their free-text interval
// descriptions into structured intervals, and indexes them by id.
func NewCatalog(defs []*VaccineDefinition) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*VaccineDefinition, len(defs))}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("vaccine definition without id")
		}
		if d.Doses < 1 {
			return nil, fmt.Errorf("vaccine %q: doses must be >= 1, got %d", d.ID, d.Doses)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate vaccine id %q", d.ID)
		}
		d.SeriesInterval = parseSeriesInterval(d.IntervalText)
		d.BoosterInterval = parseBoosterInterval(d.BoosterText)
		c.defs = append(c.defs, d)
		c.byID[d.ID] = d
	}
	return c, nil
}

// All returns every definition in insertion order.
func (c *Catalog) All() []*VaccineDefinition {
	out := make([]*VaccineDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// ByID returns the definition with the given id or ErrNotFound.
func (c *Catalog) ByID(id string) (*VaccineDefinition, error) {
	d, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

// ByAgeGroup returns the definitions scheduled for the given age group.
func (c *Catalog) ByAgeGroup(group AgeGroup) []*VaccineDefinition {
	var out []*VaccineDefinition
	for _, d := range c.defs {
		if d.AgeGroup == group {
			out = append(out, d)
		}
	}
	return out
}

// Essential returns the definitions classified as essential.
func (c *Catalog) Essential() []*VaccineDefinition {
	var out []*VaccineDefinition
	for _, d := range c.defs {
		if d.Importance == ImportanceEssential {
			out = append(out, d)
		}
	}
	return out
}

// RequiringBooster returns the definitions whose schedule includes boosters.
func (c *Catalog) RequiringBooster() []*VaccineDefinition {
	var out []*VaccineDefinition
	for _, d := range c.defs {
		if d.BoosterRequired {
			out = append(out, d)
		}
	}
	return out
}

var (
	weeksRe  = regexp.MustCompile(`(\d+)\s*weeks?`)
	yearsRe  = regexp.MustCompile(`(\d+)\s*years?`)
	monthsRe = regexp.MustCompile(`(\d+)\s*months?`)
)

// parseSeriesInterval extracts the primary-series spacing from its display
// text. Empty text means the series has no computable spacing; text without a
// recognizable "N weeks" pattern falls back to 4 weeks.
func parseSeriesInterval(text string) *Interval {
	if text == "" {
		return nil
	}
	amount := 4
	if m := weeksRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			amount = n
		}
	}
	return &Interval{Amount: amount, Unit: UnitWeek}
}

// parseBoosterInterval extracts a booster cadence. Only an explicit
// "N years" or "N months" counts, with year wording winning when both
// appear. Text without a numeric cadence yields nil and the schedule stays
// indeterminate.
func parseBoosterInterval(text string) *Interval {
	if m := yearsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &Interval{Amount: n, Unit: UnitYear}
		}
	}
	if m := monthsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &Interval{Amount: n, Unit: UnitMonth}
		}
	}
	return nil
}
