package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"idscan/internal/models"
)

var (
	// ErrNotFound is returned by lookups when no record matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateIDNumber is returned by Insert when the id number is
	// already taken. The backing store's uniqueness constraint is the final
	// authority; any pre-insert lookup is advisory only.
	ErrDuplicateIDNumber = errors.New("id number already exists")
	// ErrMissingField is returned by Insert when a required field is empty.
	ErrMissingField = errors.New("missing required field")
)

// RecordStore persists identity records. There is deliberately no update or
// delete: records are written once after review and only ever read back.
type RecordStore interface {
	FindByIDNumber(ctx context.Context, idNumber string) (*models.IdentityRecord, error)
	Insert(ctx context.Context, rec models.NewRecord) (*models.IdentityRecord, error)
	ListRecent(ctx context.Context, limit int) ([]models.IdentityRecord, error)
	ListAll(ctx context.Context) ([]models.IdentityRecord, error)
}

func validateNew(rec models.NewRecord) error {
	if strings.TrimSpace(rec.FullName) == "" {
		return fmt.Errorf("%w: full name", ErrMissingField)
	}
	if strings.TrimSpace(rec.IDNumber) == "" {
		return fmt.Errorf("%w: id number", ErrMissingField)
	}
	if strings.TrimSpace(rec.DateOfBirth) == "" {
		return fmt.Errorf("%w: date of birth", ErrMissingField)
	}
	return nil
}
