package dwelling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"wardregistry/internal/registry/models"
	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
	"wardregistry/pkg/platform/sentinel"
)

type DwellingStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	now   time.Time
}

func TestDwellingStoreSuite(t *testing.T) {
	suite.Run(t, new(DwellingStoreSuite))
}

func (s *DwellingStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
}

func (s *DwellingStoreSuite) newDwelling(owner string) *models.Dwelling {
	d, err := models.NewDwelling(id.NewDwellingID(), "2026-0001", models.DwellingDraft{
		HouseNumber: "5",
		StreetName:  "Nguyễn Trãi",
		OwnerName:   owner,
		Members:     []models.HouseholdMember{{Name: "Le Thi C", Relationship: "Con"}},
	}, "clerk", s.now)
	s.Require().NoError(err)
	return d
}

func (s *DwellingStoreSuite) TestInsertAndGet() {
	s.Run("round trips a dwelling", func() {
		d := s.newDwelling("Nguyen Van A")
		s.Require().NoError(s.store.Insert(s.ctx, d))

		found, err := s.store.Get(s.ctx, d.ID)
		s.Require().NoError(err)
		s.Equal(d.OwnerName, found.OwnerName)
		s.Equal(d.Members, found.Members)
	})

	s.Run("rejects duplicate ids", func() {
		d := s.newDwelling("Dup")
		s.Require().NoError(s.store.Insert(s.ctx, d))
		s.ErrorIs(s.store.Insert(s.ctx, d), sentinel.ErrConflict)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.store.Get(s.ctx, id.NewDwellingID())
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returned records are copies", func() {
		d := s.newDwelling("Copy")
		s.Require().NoError(s.store.Insert(s.ctx, d))
		d.OwnerName = "mutated after insert"

		found, err := s.store.Get(s.ctx, d.ID)
		s.Require().NoError(err)
		found.Members[0].Name = "mutated after get"

		again, err := s.store.Get(s.ctx, d.ID)
		s.Require().NoError(err)
		s.Equal("Copy", again.OwnerName)
		s.Equal("Le Thi C", again.Members[0].Name)
	})
}

func (s *DwellingStoreSuite) TestListKeepsInsertionOrder() {
	names := []string{"C", "A", "B"}
	for _, n := range names {
		s.Require().NoError(s.store.Insert(s.ctx, s.newDwelling(n)))
	}
	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	for i, n := range names {
		s.Equal(n, list[i].OwnerName)
	}
}

func (s *DwellingStoreSuite) TestUpdate() {
	s.Run("stores the mutated copy", func() {
		d := s.newDwelling("Before")
		s.Require().NoError(s.store.Insert(s.ctx, d))

		updated, err := s.store.Update(s.ctx, d.ID, func(cur *models.Dwelling) error {
			name := "After"
			return cur.Apply(models.DwellingPatch{OwnerName: &name}, "editor", s.now.Add(time.Hour))
		})
		s.Require().NoError(err)
		s.Equal("After", updated.OwnerName)
		s.Equal("clerk", updated.CreatedBy)
	})

	s.Run("keeps identity and creation stamps", func() {
		d := s.newDwelling("Pinned")
		s.Require().NoError(s.store.Insert(s.ctx, d))

		updated, err := s.store.Update(s.ctx, d.ID, func(cur *models.Dwelling) error {
			cur.ID = id.NewDwellingID()
			cur.CreatedBy = "intruder"
			cur.CreatedAt = time.Time{}
			return nil
		})
		s.Require().NoError(err)
		s.Equal(d.ID, updated.ID)
		s.Equal("clerk", updated.CreatedBy)
		s.Equal(s.now, updated.CreatedAt)
	})

	s.Run("failed mutation stores nothing", func() {
		d := s.newDwelling("Unchanged")
		s.Require().NoError(s.store.Insert(s.ctx, d))

		_, err := s.store.Update(s.ctx, d.ID, func(cur *models.Dwelling) error {
			cur.OwnerName = "half written"
			return dErrors.New(dErrors.CodeValidation, "nope")
		})
		s.Require().Error(err)

		found, _ := s.store.Get(s.ctx, d.ID)
		s.Equal("Unchanged", found.OwnerName)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.store.Update(s.ctx, id.NewDwellingID(), func(*models.Dwelling) error { return nil })
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *DwellingStoreSuite) TestSoftDelete() {
	s.Run("deactivates once", func() {
		d := s.newDwelling("Gone")
		s.Require().NoError(s.store.Insert(s.ctx, d))

		got, changed, err := s.store.SoftDelete(s.ctx, d.ID, "clerk", s.now.Add(time.Minute))
		s.Require().NoError(err)
		s.True(changed)
		s.Equal(models.StatusInactive, got.Status)

		got, changed, err = s.store.SoftDelete(s.ctx, d.ID, "clerk", s.now.Add(time.Hour))
		s.Require().NoError(err)
		s.False(changed)
		s.Equal(s.now.Add(time.Minute), *got.UpdatedAt)
	})

	s.Run("row is kept after soft delete", func() {
		d := s.newDwelling("Kept")
		s.Require().NoError(s.store.Insert(s.ctx, d))
		_, _, err := s.store.SoftDelete(s.ctx, d.ID, "clerk", s.now)
		s.Require().NoError(err)

		_, err = s.store.Get(s.ctx, d.ID)
		s.NoError(err)
	})

	s.Run("unknown id is not found", func() {
		_, _, err := s.store.SoftDelete(s.ctx, id.NewDwellingID(), "clerk", s.now)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *DwellingStoreSuite) TestLookup() {
	d := s.newDwelling("Lookup")
	s.Require().NoError(s.store.Insert(s.ctx, d))

	found, ok := s.store.Lookup(d.ID)
	s.True(ok)
	s.Equal("Lookup", found.OwnerName)

	_, ok = s.store.Lookup(id.NewDwellingID())
	s.False(ok)
}
