package beneficiary

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wardregistry/internal/registry/models"
	id "wardregistry/pkg/domain"
	"wardregistry/pkg/platform/sentinel"
)

// Error Contract:
// - Return sentinel.ErrNotFound when the id is not in this store's collection
// - Return sentinel.ErrConflict when inserting an id that is already stored
// - Return sentinel.ErrInvalidState when a record of another category is inserted
//
// A store holds exactly one beneficiary category. Looking up a record id that
// lives in a different category's store is a plain not-found.

// InMemory keeps one category's records in insertion order.
type InMemory struct {
	category models.Category
	mu       sync.RWMutex
	byID     map[id.RecordID]*models.BeneficiaryRecord
	order    []id.RecordID
}

func NewInMemory(category models.Category) *InMemory {
	return &InMemory{
		category: category,
		byID:     make(map[id.RecordID]*models.BeneficiaryRecord),
	}
}

func (s *InMemory) Category() models.Category {
	return s.category
}

func (s *InMemory) Insert(ctx context.Context, r *models.BeneficiaryRecord) error {
	return s.InsertAll(ctx, []*models.BeneficiaryRecord{r})
}

// InsertAll stores every record or none of them.
func (s *InMemory) InsertAll(_ context.Context, records []*models.BeneficiaryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[id.RecordID]bool, len(records))
	for _, r := range records {
		if r.Category != s.category {
			return fmt.Errorf("record %s is %s, store holds %s: %w", r.ID, r.Category, s.category, sentinel.ErrInvalidState)
		}
		if _, exists := s.byID[r.ID]; exists || seen[r.ID] {
			return fmt.Errorf("record %s: %w", r.ID, sentinel.ErrConflict)
		}
		seen[r.ID] = true
	}
	for _, r := range records {
		s.byID[r.ID] = r.Clone()
		s.order = append(s.order, r.ID)
	}
	return nil
}

func (s *InMemory) Get(_ context.Context, recordID id.RecordID) (*models.BeneficiaryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[recordID]
	if !ok {
		return nil, fmt.Errorf("%s record %s: %w", s.category, recordID, sentinel.ErrNotFound)
	}
	return r.Clone(), nil
}

// List returns every record, active or not, in insertion order.
func (s *InMemory) List(_ context.Context) ([]*models.BeneficiaryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.BeneficiaryRecord, 0, len(s.order))
	for _, recordID := range s.order {
		out = append(out, s.byID[recordID].Clone())
	}
	return out, nil
}

// ListByDwelling returns the records linked to one dwelling in insertion order.
func (s *InMemory) ListByDwelling(_ context.Context, dwellingID id.DwellingID) ([]*models.BeneficiaryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.BeneficiaryRecord
	for _, recordID := range s.order {
		if r := s.byID[recordID]; r.LinkedHouseID == dwellingID {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

// Update runs mutate on a copy under the write lock and stores the copy only
// when mutate succeeds. Identity, category and creation stamps are preserved.
func (s *InMemory) Update(_ context.Context, recordID id.RecordID, mutate func(*models.BeneficiaryRecord) error) (*models.BeneficiaryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.byID[recordID]
	if !ok {
		return nil, fmt.Errorf("%s record %s: %w", s.category, recordID, sentinel.ErrNotFound)
	}
	next := current.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	next.ID = current.ID
	next.Category = current.Category
	next.CreatedAt = current.CreatedAt
	next.CreatedBy = current.CreatedBy
	s.byID[recordID] = next
	return next.Clone(), nil
}

// SoftDelete flips the record to inactive. changed is false when it already was.
func (s *InMemory) SoftDelete(_ context.Context, recordID id.RecordID, actor string, now time.Time) (*models.BeneficiaryRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[recordID]
	if !ok {
		return nil, false, fmt.Errorf("%s record %s: %w", s.category, recordID, sentinel.ErrNotFound)
	}
	changed := r.Deactivate(actor, now)
	return r.Clone(), changed, nil
}
