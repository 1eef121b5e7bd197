package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"wardregistry/internal/registry/models"
	id "wardregistry/pkg/domain"
	"wardregistry/pkg/platform/sentinel"
)

// InMemory holds every catalog kind. Codes are unique per kind, compared
// case-insensitively. Delete is physical.
type InMemory struct {
	mu      sync.RWMutex
	entries map[id.CatalogEntryID]*models.CatalogEntry
}

func NewInMemory() *InMemory {
	return &InMemory{entries: make(map[id.CatalogEntryID]*models.CatalogEntry)}
}

// CreateIfCodeAvailable inserts the entry unless its kind already has the code.
func (s *InMemory) CreateIfCodeAvailable(_ context.Context, e *models.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[e.ID]; exists {
		return fmt.Errorf("catalog entry %s: %w", e.ID, sentinel.ErrConflict)
	}
	if s.findCodeLocked(e.Kind, e.Code) != nil {
		return fmt.Errorf("%s code %q: %w", e.Kind, e.Code, sentinel.ErrConflict)
	}
	cp := *e
	s.entries[e.ID] = &cp
	return nil
}

func (s *InMemory) FindByID(_ context.Context, kind models.CatalogKind, entryID id.CatalogEntryID) (*models.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[entryID]
	if !ok || e.Kind != kind {
		return nil, fmt.Errorf("%s entry %s: %w", kind, entryID, sentinel.ErrNotFound)
	}
	cp := *e
	return &cp, nil
}

func (s *InMemory) FindByCode(_ context.Context, kind models.CatalogKind, code string) (*models.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e := s.findCodeLocked(kind, code)
	if e == nil {
		return nil, fmt.Errorf("%s code %q: %w", kind, code, sentinel.ErrNotFound)
	}
	cp := *e
	return &cp, nil
}

// ListByKind returns a kind's entries ordered by code.
func (s *InMemory) ListByKind(_ context.Context, kind models.CatalogKind) ([]*models.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.CatalogEntry
	for _, e := range s.entries {
		if e.Kind == kind {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *InMemory) Rename(_ context.Context, kind models.CatalogKind, entryID id.CatalogEntryID, name string) (*models.CatalogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[entryID]
	if !ok || e.Kind != kind {
		return nil, fmt.Errorf("%s entry %s: %w", kind, entryID, sentinel.ErrNotFound)
	}
	e.Name = name
	cp := *e
	return &cp, nil
}

func (s *InMemory) Delete(_ context.Context, kind models.CatalogKind, entryID id.CatalogEntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[entryID]
	if !ok || e.Kind != kind {
		return fmt.Errorf("%s entry %s: %w", kind, entryID, sentinel.ErrNotFound)
	}
	delete(s.entries, entryID)
	return nil
}

func (s *InMemory) findCodeLocked(kind models.CatalogKind, code string) *models.CatalogEntry {
	for _, e := range s.entries {
		if e.Kind == kind && strings.EqualFold(e.Code, code) {
			return e
		}
	}
	return nil
}
