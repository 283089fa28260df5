package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"idscan/internal/models"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Memory
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) newRecord(idNumber string) models.NewRecord {
	addr := "123 Main St, New York, NY 10001"
	return models.NewRecord{
		FullName:    "Jane Doe",
		IDNumber:    idNumber,
		DateOfBirth: "1985-04-12",
		Address:     &addr,
	}
}

func (s *MemoryStoreSuite) TestInsertAndLookup() {
	s.Run("inserts and finds record by id number", func() {
		rec, err := s.store.Insert(s.ctx, s.newRecord("ID10000001"))
		s.Require().NoError(err)
		s.NotZero(rec.ID)
		s.False(rec.CreatedAt.IsZero())

		found, err := s.store.FindByIDNumber(s.ctx, "ID10000001")
		s.Require().NoError(err)
		s.Equal(rec.ID, found.ID)
		s.Equal("Jane Doe", found.FullName)
	})

	s.Run("returns ErrNotFound for unknown id number", func() {
		_, err := s.store.FindByIDNumber(s.ctx, "ID99999999")
		s.Require().ErrorIs(err, ErrNotFound)
	})

	s.Run("optional fields default to null", func() {
		rec, err := s.store.Insert(s.ctx, models.NewRecord{
			FullName:    "John Smith",
			IDNumber:    "ID10000002",
			DateOfBirth: "1970-01-01",
		})
		s.Require().NoError(err)
		s.Nil(rec.ExpiryDate)
		s.Nil(rec.Address)
		s.Nil(rec.PhotoURL)
	})
}

func (s *MemoryStoreSuite) TestIDNumberUniqueness() {
	_, err := s.store.Insert(s.ctx, s.newRecord("ID20000001"))
	s.Require().NoError(err)

	dup := s.newRecord("ID20000001")
	dup.FullName = "Somebody Else"
	_, err = s.store.Insert(s.ctx, dup)
	s.Require().ErrorIs(err, ErrDuplicateIDNumber)

	// the failed insert must not have created a second row
	all, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
	s.Equal("Jane Doe", all[0].FullName)
}

func (s *MemoryStoreSuite) TestRequiredFields() {
	cases := []struct {
		name string
		rec  models.NewRecord
	}{
		{"empty full name", models.NewRecord{IDNumber: "X", DateOfBirth: "2000-01-01"}},
		{"empty id number", models.NewRecord{FullName: "A B", DateOfBirth: "2000-01-01"}},
		{"empty date of birth", models.NewRecord{FullName: "A B", IDNumber: "X"}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.store.Insert(s.ctx, tc.rec)
			s.Require().ErrorIs(err, ErrMissingField)
		})
	}
}

func (s *MemoryStoreSuite) TestListOrdering() {
	for i := 0; i < 7; i++ {
		_, err := s.store.Insert(s.ctx, s.newRecord(fmt.Sprintf("ID3000000%d", i)))
		s.Require().NoError(err)
	}

	recent, err := s.store.ListRecent(s.ctx, 5)
	s.Require().NoError(err)
	s.Len(recent, 5)
	s.Equal("ID30000006", recent[0].IDNumber)
	for i := 1; i < len(recent); i++ {
		s.False(recent[i].CreatedAt.After(recent[i-1].CreatedAt), "createdAt must be non-increasing")
	}

	all, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 7)
	s.Equal("ID30000006", all[0].IDNumber)
	s.Equal("ID30000000", all[6].IDNumber)
}

func (s *MemoryStoreSuite) TestListRecentSmallerThanLimit() {
	_, err := s.store.Insert(s.ctx, s.newRecord("ID40000001"))
	s.Require().NoError(err)

	recent, err := s.store.ListRecent(s.ctx, 5)
	s.Require().NoError(err)
	s.Len(recent, 1)
}
