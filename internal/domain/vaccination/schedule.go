package vaccination

import "time"

// Display values for schedule states that have no concrete date.
const (
	DueNotStarted    = "Not started"
	DueComplete      = "Complete"
	DueConsultDoctor = "Check with doctor"
)

// DueDateFormat is how concrete due dates are rendered.
const DueDateFormat = "2006-01-02"

// Progress is the derived completion state of one vaccine for one session.
// PrimarySeriesComplete depends only on the primary dose count;
// FullyUpToDate additionally requires that no booster is pending at the
// evaluation time. An unparseable booster schedule leaves FullyUpToDate
// false.
type Progress struct {
	RecordedCount         int    `json:"recorded_count"`
	RequiredDoses         int    `json:"required_doses"`
	PrimarySeriesComplete bool   `json:"primary_series_complete"`
	FullyUpToDate         bool   `json:"fully_up_to_date"`
	NextDue               string `json:"next_due"`
}

// Evaluate derives Progress from a definition and the session's dose records
// for it, relative to now. It is a pure function of its inputs; calling it
// twice with the same state yields identical output.
func Evaluate(def *VaccineDefinition, records []*DoseRecord, now time.Time) Progress {
	p := Progress{
		RecordedCount: len(records),
		RequiredDoses: def.Doses,
	}
	p.PrimarySeriesComplete = p.RecordedCount >= def.Doses

	switch {
	case p.RecordedCount == 0:
		p.NextDue = DueNotStarted

	case p.PrimarySeriesComplete && !def.BoosterRequired:
		p.NextDue = DueComplete
		p.FullyUpToDate = true

	case !p.PrimarySeriesComplete && def.SeriesInterval != nil:
		last := latestRecord(records)
		p.NextDue = def.SeriesInterval.Apply(last.DateGiven).Format(DueDateFormat)

	case p.PrimarySeriesComplete && def.BoosterInterval != nil:
		last := latestRecord(records)
		due := def.BoosterInterval.Apply(last.DateGiven)
		p.NextDue = due.Format(DueDateFormat)
		p.FullyUpToDate = due.After(now)

	default:
		// Missing or unparseable schedule data degrades to a conservative
		// answer instead of failing.
		p.NextDue = DueConsultDoctor
	}
	return p
}

// latestRecord picks the record with the maximum DateGiven. On ties the first
// encountered wins, which keeps the choice deterministic across calls.
func latestRecord(records []*DoseRecord) *DoseRecord {
	latest := records[0]
	for _, r := range records[1:] {
		if r.DateGiven.After(latest.DateGiven) {
			latest = r
		}
	}
	return latest
}
