package dwelling

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
// - Return sentinel.ErrNotFound when no dwelling has the id
// - Return sentinel.ErrConflict when inserting an id that is already stored
// - Errors returned by an Update mutate callback are passed through unchanged
//
// Records are cloned on the way in and on the way out so callers never share
// memory with the store.

// InMemory keeps dwellings in insertion order.
type InMemory struct {
	mu    sync.RWMutex
	byID  map[id.DwellingID]*models.Dwelling
	order []id.DwellingID
}

func NewInMemory() *InMemory {
	return &InMemory{byID: make(map[id.DwellingID]*models.Dwelling)}
}

func (s *InMemory) Insert(_ context.Context, d *models.Dwelling) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[d.ID]; exists {
		return fmt.Errorf("dwelling %s: %w", d.ID, sentinel.ErrConflict)
	}
	s.byID[d.ID] = d.Clone()
	s.order = append(s.order, d.ID)
	return nil
}

func (s *InMemory) Get(_ context.Context, dwellingID id.DwellingID) (*models.Dwelling, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.byID[dwellingID]
	if !ok {
		return nil, fmt.Errorf("dwelling %s: %w", dwellingID, sentinel.ErrNotFound)
	}
	return d.Clone(), nil
}

// List returns every dwelling, active or not, in insertion order.
func (s *InMemory) List(_ context.Context) ([]*models.Dwelling, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Dwelling, 0, len(s.order))
	for _, dwellingID := range s.order {
		out = append(out, s.byID[dwellingID].Clone())
	}
	return out, nil
}

// Update runs mutate on a copy under the write lock and stores the copy only
// when mutate succeeds.
func (s *InMemory) Update(_ context.Context, dwellingID id.DwellingID, mutate func(*models.Dwelling) error) (*models.Dwelling, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.byID[dwellingID]
	if !ok {
		return nil, fmt.Errorf("dwelling %s: %w", dwellingID, sentinel.ErrNotFound)
	}
	next := current.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	next.CreatedBy = current.CreatedBy
	s.byID[dwellingID] = next
	return next.Clone(), nil
}

// SoftDelete flips the dwelling to inactive. changed is false when it already was.
func (s *InMemory) SoftDelete(_ context.Context, dwellingID id.DwellingID, actor string, now time.Time) (*models.Dwelling, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.byID[dwellingID]
	if !ok {
		return nil, false, fmt.Errorf("dwelling %s: %w", dwellingID, sentinel.ErrNotFound)
	}
	changed := d.Deactivate(actor, now)
	return d.Clone(), changed, nil
}

// Lookup implements the linkage resolver's source without error plumbing.
func (s *InMemory) Lookup(dwellingID id.DwellingID) (*models.Dwelling, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.byID[dwellingID]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}
