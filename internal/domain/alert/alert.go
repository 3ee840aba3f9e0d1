// Package alert serves regional health advisories. The feed is seeded with
// static advisories stamped per request; a government feed integration would
// replace the seed source.
package alert

import "time"

type AlertType string

const (
	TypeOutbreak    AlertType = "outbreak"
	TypeVaccination AlertType = "vaccination"
	TypeAdvisory    AlertType = "advisory"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Alert struct {
	ID        string    `json:"id"`
	Type      AlertType `json:"type"`
	Disease   string    `json:"disease"`
	Severity  Severity  `json:"severity"`
	Location  string    `json:"location"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// seed carries an alert template plus its age relative to the request time.
type seed struct {
	alert Alert
	age   time.Duration
}

// Feed produces the active advisories for a location.
type Feed struct {
	seeds []seed
	now   func() time.Time
}

func NewFeed() *Feed {
	return &Feed{seeds: defaultSeeds(), now: time.Now}
}

// ForLocation stamps each advisory with the requested location and a
// timestamp relative to now. An empty location maps to "default".
func (f *Feed) ForLocation(location string) []Alert {
	if location == "" {
		location = "default"
	}
	now := f.now().UTC()
	out := make([]Alert, len(f.seeds))
	for i, s := range f.seeds {
		a := s.alert
		a.Location = location
		a.Timestamp = now.Add(-s.age)
		out[i] = a
	}
	return out
}

func defaultSeeds() []seed {
	return []seed{
		{
			alert: Alert{
				ID:       "1",
				Type:     TypeOutbreak,
				Disease:  "Dengue",
				Severity: SeverityHigh,
				Message:  "Increased dengue cases reported. Take preventive measures against mosquito breeding.",
				Source:   "Ministry of Health",
			},
		},
		{
			alert: Alert{
				ID:       "2",
				Type:     TypeVaccination,
				Disease:  "COVID-19",
				Severity: SeverityMedium,
				Message:  "Free COVID-19 booster shots available at community health centers.",
				Source:   "District Health Office",
			},
			age: 24 * time.Hour,
		},
	}
}
