package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"wardregistry/internal/registry/linkage"
	registrymetrics "wardregistry/internal/registry/metrics"
	"wardregistry/internal/registry/models"
	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
	audit "wardregistry/pkg/platform/audit"
	"wardregistry/pkg/platform/sentinel"
	"wardregistry/pkg/requestcontext"
)

// DwellingStore is the dwelling collection.
type DwellingStore interface {
	Insert(ctx context.Context, d *models.Dwelling) error
	Get(ctx context.Context, dwellingID id.DwellingID) (*models.Dwelling, error)
	List(ctx context.Context) ([]*models.Dwelling, error)
	Update(ctx context.Context, dwellingID id.DwellingID, mutate func(*models.Dwelling) error) (*models.Dwelling, error)
	SoftDelete(ctx context.Context, dwellingID id.DwellingID, actor string, now time.Time) (*models.Dwelling, bool, error)
}

// BeneficiaryStore is one category's record collection.
type BeneficiaryStore interface {
	Category() models.Category
	Insert(ctx context.Context, r *models.BeneficiaryRecord) error
	InsertAll(ctx context.Context, records []*models.BeneficiaryRecord) error
	Get(ctx context.Context, recordID id.RecordID) (*models.BeneficiaryRecord, error)
	List(ctx context.Context) ([]*models.BeneficiaryRecord, error)
	ListByDwelling(ctx context.Context, dwellingID id.DwellingID) ([]*models.BeneficiaryRecord, error)
	Update(ctx context.Context, recordID id.RecordID, mutate func(*models.BeneficiaryRecord) error) (*models.BeneficiaryRecord, error)
	SoftDelete(ctx context.Context, recordID id.RecordID, actor string, now time.Time) (*models.BeneficiaryRecord, bool, error)
}

// CatalogStore holds the reference catalogs.
type CatalogStore interface {
	CreateIfCodeAvailable(ctx context.Context, e *models.CatalogEntry) error
	FindByID(ctx context.Context, kind models.CatalogKind, entryID id.CatalogEntryID) (*models.CatalogEntry, error)
	FindByCode(ctx context.Context, kind models.CatalogKind, code string) (*models.CatalogEntry, error)
	ListByKind(ctx context.Context, kind models.CatalogKind) ([]*models.CatalogEntry, error)
	Rename(ctx context.Context, kind models.CatalogKind, entryID id.CatalogEntryID, name string) (*models.CatalogEntry, error)
	Delete(ctx context.Context, kind models.CatalogKind, entryID id.CatalogEntryID) error
}

// Sequencer hands out the running number for a year's case numbers.
type Sequencer interface {
	Next(ctx context.Context, year int) (int64, error)
}

// Linkage resolves dwelling references for display and payee selection.
type Linkage interface {
	ResolveAddress(dwellingID id.DwellingID) string
	ResolveHouseholdChoices(dwellingID id.DwellingID) []linkage.Choice
	BindPayee(dwellingID id.DwellingID, choiceID string) (models.Payee, error)
	ResolvePayee(dwellingID id.DwellingID, p models.Payee) string
}

// Auditor receives one event per successful mutation.
type Auditor interface {
	Emit(ctx context.Context, event audit.Event)
}

// Stores groups the collections the service mutates.
type Stores struct {
	Dwellings DwellingStore
	Records   []BeneficiaryStore
	Catalogs  CatalogStore
	Sequencer Sequencer
}

// Service is the lifecycle manager: it creates, updates and soft-deletes
// dwellings and beneficiary records, and manages the reference catalogs.
// The acting user and the event time come from the request context.
type Service struct {
	dwellings DwellingStore
	records   map[models.Category]BeneficiaryStore
	catalogs  CatalogStore
	sequencer Sequencer
	links     Linkage
	logger    *slog.Logger
	metrics   *registrymetrics.Metrics
	auditor   Auditor
	location  *time.Location
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *registrymetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditor(a Auditor) Option {
	return func(s *Service) {
		s.auditor = a
	}
}

// WithLocation sets the time zone used to pick the case-number year.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// New constructs a Service. Every beneficiary category needs a store in
// stores.Records; a category without one answers with an internal error.
func New(stores Stores, links Linkage, opts ...Option) *Service {
	s := &Service{
		dwellings: stores.Dwellings,
		records:   make(map[models.Category]BeneficiaryStore, len(stores.Records)),
		catalogs:  stores.Catalogs,
		sequencer: stores.Sequencer,
		links:     links,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		location:  time.UTC,
	}
	for _, r := range stores.Records {
		s.records[r.Category()] = r
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Links exposes the resolver so read paths render the same addresses and
// payees the service validated against.
func (s *Service) Links() Linkage {
	return s.links
}

func (s *Service) recordStore(category models.Category) (BeneficiaryStore, error) {
	if !category.IsBeneficiary() {
		return nil, dErrors.NewField(dErrors.CodeInvalidInput, "category", "not a beneficiary category")
	}
	st, ok := s.records[category]
	if !ok {
		return nil, dErrors.New(dErrors.CodeInternal, "no store configured for "+string(category))
	}
	return st, nil
}

func (s *Service) stamp(ctx context.Context) (string, time.Time) {
	return requestcontext.Actor(ctx), requestcontext.Now(ctx)
}

func (s *Service) logEvent(ctx context.Context, event string, attributes ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	attributes = append(attributes, "event", event, "actor", requestcontext.Actor(ctx))
	s.logger.InfoContext(ctx, event, attributes...)
}

func (s *Service) trail(ctx context.Context, action audit.Action, kind, subject string) {
	if s.auditor != nil {
		s.auditor.Emit(ctx, audit.Event{Action: action, Kind: kind, Subject: subject})
	}
}

func (s *Service) incrementCreated(category models.Category, n int) {
	if s.metrics != nil {
		s.metrics.IncrementCreated(string(category), n)
	}
}

func (s *Service) incrementSoftDeleted(category models.Category) {
	if s.metrics != nil {
		s.metrics.IncrementSoftDeleted(string(category))
	}
}

// wrapStoreErr maps store sentinels onto coded errors. Coded errors returned
// from mutate callbacks pass through untouched.
func wrapStoreErr(err error, what string) error {
	if err == nil {
		return nil
	}
	if _, ok := dErrors.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, what+" not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, what+" already exists")
	case errors.Is(err, sentinel.ErrInvalidState):
		return dErrors.New(dErrors.CodeInvariantViolation, what+" belongs to another category")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to access "+what)
	}
}
