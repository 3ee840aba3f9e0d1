package vaccination

import (
	"context"

	"github.com/google/uuid"
)

// RecordRepository holds the dose records of a single session. Implementations
// must keep insertion order stable.
type RecordRepository interface {
	Add(ctx context.Context, rec *DoseRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*DoseRecord, error)
	ListByVaccine(ctx context.Context, vaccineID string) ([]*DoseRecord, error)
	CountByVaccine(ctx context.Context, vaccineID string) (int, error)
	List(ctx context.Context) ([]*DoseRecord, error)
}
