// Package registry assembles the ward registry: stores, linkage, lifecycle
// service, reports, exports and the HTTP handler.
package registry

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"wardregistry/internal/registry/export"
	"wardregistry/internal/registry/handler"
	"wardregistry/internal/registry/linkage"
	registrymetrics "wardregistry/internal/registry/metrics"
	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/report"
	"wardregistry/internal/registry/service"
	beneficiarystore "wardregistry/internal/registry/store/beneficiary"
	catalogstore "wardregistry/internal/registry/store/catalog"
	dwellingstore "wardregistry/internal/registry/store/dwelling"
	"wardregistry/internal/registry/store/sequence"
	auditpublisher "wardregistry/pkg/platform/audit/publisher"
	auditmemory "wardregistry/pkg/platform/audit/store/memory"
)

// Service exposes the record-keeping operations.
type Service = service.Service

// Handler wires HTTP endpoints to the registry.
type Handler = handler.Handler

// Options tunes a Module. Zero values fall back to defaults.
type Options struct {
	Logger            *slog.Logger
	Registerer        prometheus.Registerer
	Location          *time.Location
	PageSize          int
	DrillDownPageSize int
	MilitaryHighlight string
	Sequencer         service.Sequencer
	Uploader          export.Uploader
	// AuditBuffer > 0 writes the audit trail from a background goroutine.
	AuditBuffer int
}

// Module is one registry instance over in-memory stores.
type Module struct {
	Dwellings *dwellingstore.InMemory
	Records   map[models.Category]*beneficiarystore.InMemory
	Catalogs  *catalogstore.InMemory
	Links     *linkage.Resolver
	Service   *Service
	Reports   *report.Engine
	Exports   *export.Exporter
	Handler   *Handler
	Metrics   *registrymetrics.Metrics
	Audit     *auditmemory.InMemoryStore

	auditor *auditpublisher.Publisher
}

// New builds a Module with one store per beneficiary category.
func New(opts Options) *Module {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	seq := opts.Sequencer
	if seq == nil {
		seq = sequence.NewMemory()
	}

	m := &Module{
		Dwellings: dwellingstore.NewInMemory(),
		Records:   make(map[models.Category]*beneficiarystore.InMemory),
		Catalogs:  catalogstore.NewInMemory(),
		Metrics:   registrymetrics.New(opts.Registerer),
		Audit:     auditmemory.NewInMemoryStore(),
	}
	m.auditor = auditpublisher.NewPublisher(m.Audit,
		auditpublisher.WithLogger(logger),
		auditpublisher.WithAsyncBuffer(opts.AuditBuffer),
	)
	var recordStores []service.BeneficiaryStore
	var recordListers []report.RecordLister
	for _, c := range models.BeneficiaryCategories() {
		st := beneficiarystore.NewInMemory(c)
		m.Records[c] = st
		recordStores = append(recordStores, st)
		recordListers = append(recordListers, st)
	}

	m.Links = linkage.New(m.Dwellings)
	m.Service = service.New(service.Stores{
		Dwellings: m.Dwellings,
		Records:   recordStores,
		Catalogs:  m.Catalogs,
		Sequencer: seq,
	}, m.Links,
		service.WithLogger(logger),
		service.WithMetrics(m.Metrics),
		service.WithLocation(loc),
		service.WithAuditor(m.auditor),
	)

	reportOpts := []report.Option{
		report.WithMetrics(m.Metrics),
		report.WithDrillDownPageSize(opts.DrillDownPageSize),
	}
	if opts.MilitaryHighlight != "" {
		reportOpts = append(reportOpts, report.WithMilitaryHighlight(opts.MilitaryHighlight))
	}
	m.Reports = report.New(m.Dwellings, recordListers, m.Links, reportOpts...)

	exportOpts := []export.Option{
		export.WithMetrics(m.Metrics),
		export.WithLocation(loc),
	}
	if opts.Uploader != nil {
		exportOpts = append(exportOpts, export.WithUploader(opts.Uploader))
	}
	m.Exports = export.New(m.Service, m.Links, exportOpts...)

	m.Handler = handler.New(m.Service, m.Reports, m.Exports, m.Links, logger,
		handler.WithLocation(loc),
		handler.WithPageSize(opts.PageSize),
		handler.WithAuditLog(m.Audit),
	)
	return m
}

// Close flushes buffered audit events.
func (m *Module) Close() {
	m.auditor.Close()
}
