package store

import (
	"context"
	"sync"
	"time"

	"idscan/internal/models"
)

// Memory is an in-process RecordStore. It exists so the app runs without a
// database (DATABASE_URL unset) and so handler tests don't need Postgres.
// The map doubles as the uniqueness constraint on id_number.
type Memory struct {
	mu       sync.Mutex
	nextID   uint
	records  []models.IdentityRecord
	byNumber map[string]int
}

func NewMemory() *Memory {
	return &Memory{byNumber: make(map[string]int)}
}

func (s *Memory) FindByIDNumber(ctx context.Context, idNumber string) (*models.IdentityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byNumber[idNumber]
	if !ok {
		return nil, ErrNotFound
	}
	rec := s.records[i]
	return &rec, nil
}

func (s *Memory) Insert(ctx context.Context, rec models.NewRecord) (*models.IdentityRecord, error) {
	if err := validateNew(rec); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byNumber[rec.IDNumber]; ok {
		return nil, ErrDuplicateIDNumber
	}
	s.nextID++
	row := models.IdentityRecord{
		ID:          s.nextID,
		FullName:    rec.FullName,
		IDNumber:    rec.IDNumber,
		DateOfBirth: rec.DateOfBirth,
		ExpiryDate:  rec.ExpiryDate,
		Address:     rec.Address,
		CreatedAt:   time.Now(),
	}
	s.byNumber[rec.IDNumber] = len(s.records)
	s.records = append(s.records, row)
	return &row, nil
}

func (s *Memory) ListRecent(ctx context.Context, limit int) ([]models.IdentityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.records)
	if limit > n {
		limit = n
	}
	out := make([]models.IdentityRecord, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

func (s *Memory) ListAll(ctx context.Context) ([]models.IdentityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.IdentityRecord, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}
