package vaccination

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// recordRepoMem is the in-memory RecordRepository backing one session. Dose
// records are never persisted beyond the session lifetime.
type recordRepoMem struct {
	mu        sync.RWMutex
	records   []*DoseRecord
	byVaccine map[string][]*DoseRecord
}

// NewRecordStore returns an empty in-memory record repository.
func NewRecordStore() RecordRepository {
	return &recordRepoMem{byVaccine: make(map[string][]*DoseRecord)}
}

func (r *recordRepoMem) Add(_ context.Context, rec *DoseRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = uuid.New()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	r.records = append(r.records, rec)
	r.byVaccine[rec.VaccineID] = append(r.byVaccine[rec.VaccineID], rec)
	return nil
}

func (r *recordRepoMem) GetByID(_ context.Context, id uuid.UUID) (*DoseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("dose record %s not found", id)
}

func (r *recordRepoMem) ListByVaccine(_ context.Context, vaccineID string) ([]*DoseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := r.byVaccine[vaccineID]
	out := make([]*DoseRecord, len(recs))
	copy(out, recs)
	return out, nil
}

func (r *recordRepoMem) CountByVaccine(_ context.Context, vaccineID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byVaccine[vaccineID]), nil
}

func (r *recordRepoMem) List(_ context.Context) ([]*DoseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*DoseRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}
