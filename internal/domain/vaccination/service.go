package vaccination

import (
	"context"
	"time"
)

// Service combines the catalog, per-session record stores, and the schedule
// evaluation into the operations the handlers expose.
type Service struct {
	catalog  *Catalog
	sessions *SessionManager

	// now is swappable for deterministic schedule tests.
	now func() time.Time
}

func NewService(catalog *Catalog, sessions *SessionManager) *Service {
	return &Service{catalog: catalog, sessions: sessions, now: time.Now}
}

// Catalog exposes the read-only vaccine catalog.
func (s *Service) Catalog() *Catalog { return s.catalog }

// Session resolves (or creates) the record store for a session id.
func (s *Service) Session(id string) (RecordRepository, string) {
	return s.sessions.Get(id)
}

// AddRecordInput carries a record-addition request after transport decoding.
type AddRecordInput struct {
	VaccineID   string
	DateGiven   time.Time
	DoseNumber  int
	Location    string
	BatchNumber string
	Notes       string
}

// AddRecord validates the input and appends a new dose record to the
// session's store. Unknown vaccine ids yield ErrNotFound; bad fields yield a
// *ValidationError.
func (s *Service) AddRecord(ctx context.Context, store RecordRepository, in AddRecordInput) (*DoseRecord, error) {
	if _, err := s.catalog.ByID(in.VaccineID); err != nil {
		return nil, err
	}
	if in.DateGiven.IsZero() {
		return nil, &ValidationError{Field: "date_given", Reason: "is required"}
	}
	if in.DateGiven.After(s.now()) {
		return nil, &ValidationError{Field: "date_given", Reason: "must not be in the future"}
	}
	if in.DoseNumber < 1 {
		return nil, &ValidationError{Field: "dose_number", Reason: "must be at least 1"}
	}
	rec := &DoseRecord{
		VaccineID:   in.VaccineID,
		DateGiven:   in.DateGiven,
		DoseNumber:  in.DoseNumber,
		Location:    in.Location,
		BatchNumber: in.BatchNumber,
		Notes:       in.Notes,
	}
	if err := store.Add(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Records returns the session's dose records for one vaccine in insertion
// order. The vaccine must exist in the catalog.
func (s *Service) Records(ctx context.Context, store RecordRepository, vaccineID string) ([]*DoseRecord, error) {
	if _, err := s.catalog.ByID(vaccineID); err != nil {
		return nil, err
	}
	return store.ListByVaccine(ctx, vaccineID)
}

// VaccineStatus is the display-ready combination of a definition, its
// localized text, and the session's progress against it.
type VaccineStatus struct {
	Definition *VaccineDefinition `json:"definition"`
	Display    Translation        `json:"display"`
	Progress
}

// ListStatuses walks the catalog (optionally narrowed to an age group) and
// attaches the session's progress to each definition, preserving catalog
// order.
func (s *Service) ListStatuses(ctx context.Context, store RecordRepository, group *AgeGroup, lang string) ([]*VaccineStatus, error) {
	defs := s.catalog.All()
	if group != nil {
		defs = s.catalog.ByAgeGroup(*group)
	}
	now := s.now()
	out := make([]*VaccineStatus, 0, len(defs))
	for _, def := range defs {
		records, err := store.ListByVaccine(ctx, def.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &VaccineStatus{
			Definition: def,
			Display:    def.Localize(lang),
			Progress:   Evaluate(def, records, now),
		})
	}
	return out, nil
}

// Status evaluates a single vaccine for the session.
func (s *Service) Status(ctx context.Context, store RecordRepository, vaccineID, lang string) (*VaccineStatus, error) {
	def, err := s.catalog.ByID(vaccineID)
	if err != nil {
		return nil, err
	}
	records, err := store.ListByVaccine(ctx, vaccineID)
	if err != nil {
		return nil, err
	}
	return &VaccineStatus{
		Definition: def,
		Display:    def.Localize(lang),
		Progress:   Evaluate(def, records, s.now()),
	}, nil
}
