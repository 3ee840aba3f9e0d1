package vaccination

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRecordStore_AddRoundTrip(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	rec := &DoseRecord{
		VaccineID:   "bcg",
		DateGiven:   date("2024-01-01"),
		DoseNumber:  1,
		Location:    "District clinic",
		BatchNumber: "B-1042",
		Notes:       "no reaction",
	}
	if err := store.Add(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Error("expected generated id")
	}

	got, err := store.ListByVaccine(ctx, "bcg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(got))
	}
	r := got[0]
	if r.VaccineID != "bcg" || r.DoseNumber != 1 || r.Location != "District clinic" ||
		r.BatchNumber != "B-1042" || r.Notes != "no reaction" || !r.DateGiven.Equal(date("2024-01-01")) {
		t.Errorf("record fields not preserved: %+v", r)
	}
}

func TestRecordStore_InsertionOrder(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		store.Add(ctx, &DoseRecord{VaccineID: "dpt", DateGiven: date("2024-01-01"), DoseNumber: i})
	}
	got, _ := store.ListByVaccine(ctx, "dpt")
	for i, r := range got {
		if r.DoseNumber != i+1 {
			t.Errorf("position %d: expected dose %d, got %d", i, i+1, r.DoseNumber)
		}
	}
}

func TestRecordStore_CountByVaccine(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()
	store.Add(ctx, &DoseRecord{VaccineID: "dpt", DateGiven: date("2024-01-01"), DoseNumber: 1})
	store.Add(ctx, &DoseRecord{VaccineID: "bcg", DateGiven: date("2024-01-01"), DoseNumber: 1})

	n, err := store.CountByVaccine(ctx, "dpt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1, got %d", n)
	}
	if n, _ := store.CountByVaccine(ctx, "mmr"); n != 0 {
		t.Errorf("expected 0 for unrecorded vaccine, got %d", n)
	}
}

func TestRecordStore_GetByID(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()
	rec := &DoseRecord{VaccineID: "bcg", DateGiven: date("2024-01-01"), DoseNumber: 1}
	store.Add(ctx, rec)

	got, err := store.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != rec.ID {
		t.Errorf("expected %v, got %v", rec.ID, got.ID)
	}
	if _, err := store.GetByID(ctx, uuid.New()); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestSessionManager_IsolatesSessions(t *testing.T) {
	m := NewSessionManager(time.Hour)
	ctx := context.Background()

	storeA, idA := m.Get("")
	storeB, idB := m.Get("")
	if idA == idB {
		t.Fatal("expected distinct session ids")
	}

	storeA.Add(ctx, &DoseRecord{VaccineID: "bcg", DateGiven: date("2024-01-01"), DoseNumber: 1})

	if n, _ := storeB.CountByVaccine(ctx, "bcg"); n != 0 {
		t.Error("session B must not see session A's records")
	}

	// Same id resolves to the same store.
	again, id := m.Get(idA)
	if id != idA {
		t.Errorf("expected %q, got %q", idA, id)
	}
	if n, _ := again.CountByVaccine(ctx, "bcg"); n != 1 {
		t.Error("expected session A's record to survive lookup")
	}
}

func TestSessionManager_Prune(t *testing.T) {
	m := NewSessionManager(time.Minute)
	m.Get("")
	m.Get("")
	if m.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", m.Len())
	}

	if removed := m.Prune(time.Now()); removed != 0 {
		t.Errorf("fresh sessions must not be pruned, removed %d", removed)
	}
	if removed := m.Prune(time.Now().Add(2 * time.Minute)); removed != 2 {
		t.Errorf("expected 2 pruned, got %d", removed)
	}
	if m.Len() != 0 {
		t.Errorf("expected empty manager, got %d", m.Len())
	}
}

func TestSessionManager_ZeroTTLNeverPrunes(t *testing.T) {
	m := NewSessionManager(0)
	m.Get("")
	if removed := m.Prune(time.Now().Add(24 * time.Hour)); removed != 0 {
		t.Errorf("ttl <= 0 must disable pruning, removed %d", removed)
	}
}
