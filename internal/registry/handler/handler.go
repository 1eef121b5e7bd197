package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"wardregistry/internal/registry/export"
	"wardregistry/internal/registry/linkage"
	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/pagination"
	"wardregistry/internal/registry/query"
	"wardregistry/internal/registry/report"
	"wardregistry/internal/registry/service"
	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
	"wardregistry/pkg/platform/httputil"
	"wardregistry/pkg/requestcontext"
)

// Service is the registry's record-keeping surface.
type Service interface {
	CreateDwelling(ctx context.Context, draft models.DwellingDraft) (*models.Dwelling, error)
	GetDwelling(ctx context.Context, dwellingID id.DwellingID) (*models.Dwelling, error)
	UpdateDwelling(ctx context.Context, dwellingID id.DwellingID, patch models.DwellingPatch) (*models.Dwelling, error)
	SoftDeleteDwelling(ctx context.Context, dwellingID id.DwellingID) (*models.Dwelling, error)
	ListDwellings(ctx context.Context, c query.Criteria) ([]*models.Dwelling, error)
	HouseholdChoices(ctx context.Context, dwellingID id.DwellingID) ([]linkage.Choice, error)
	LinkedRecords(ctx context.Context, dwellingID id.DwellingID) (map[models.Category][]*models.BeneficiaryRecord, error)

	CreateRecord(ctx context.Context, category models.Category, in service.RecordInput) (*models.BeneficiaryRecord, error)
	BatchCreate(ctx context.Context, category models.Category, dwellingID id.DwellingID, inputs []service.RecordInput) ([]*models.BeneficiaryRecord, error)
	GetRecord(ctx context.Context, category models.Category, recordID id.RecordID) (*models.BeneficiaryRecord, error)
	UpdateRecord(ctx context.Context, category models.Category, recordID id.RecordID, patch service.RecordPatch) (*models.BeneficiaryRecord, error)
	SoftDeleteRecord(ctx context.Context, category models.Category, recordID id.RecordID) (*models.BeneficiaryRecord, error)
	ListRecords(ctx context.Context, category models.Category, c query.Criteria) ([]*models.BeneficiaryRecord, error)

	CreateCatalogEntry(ctx context.Context, kind models.CatalogKind, code, name string) (*models.CatalogEntry, error)
	ListCatalog(ctx context.Context, kind models.CatalogKind) ([]*models.CatalogEntry, error)
	RenameCatalogEntry(ctx context.Context, kind models.CatalogKind, entryID id.CatalogEntryID, name string) (*models.CatalogEntry, error)
	DeleteCatalogEntry(ctx context.Context, kind models.CatalogKind, entryID id.CatalogEntryID) error
}

// Reporter computes summaries and their drill-down lists.
type Reporter interface {
	Summarize(ctx context.Context, c query.Criteria) (*report.Summary, error)
	DwellingDetails(ctx context.Context, reportCriteria query.Criteria, q report.DetailQuery) (pagination.Page[*models.Dwelling], error)
	RecordDetails(ctx context.Context, category models.Category, reportCriteria query.Criteria, q report.DetailQuery) (pagination.Page[*models.BeneficiaryRecord], error)
}

// Exporter renders category exports and optionally stores them.
type Exporter interface {
	Export(ctx context.Context, category models.Category, format export.Format, c query.Criteria) (*export.File, error)
	Upload(ctx context.Context, f *export.File) (string, error)
}

// Resolver renders dwelling references for responses.
type Resolver interface {
	ResolveAddress(dwellingID id.DwellingID) string
	ResolvePayee(dwellingID id.DwellingID, p models.Payee) string
}

// Handler wires registry endpoints to the service, report engine and exporter.
type Handler struct {
	service  Service
	reports  Reporter
	exports  Exporter
	links    Resolver
	audit    AuditLog
	logger   *slog.Logger
	location *time.Location
	pageSize int
}

type Option func(*Handler)

// WithLocation sets the zone date filters are read in.
func WithLocation(loc *time.Location) Option {
	return func(h *Handler) {
		if loc != nil {
			h.location = loc
		}
	}
}

// WithPageSize sets the page size of the primary list endpoints.
func WithPageSize(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.pageSize = n
		}
	}
}

// WithAuditLog exposes the change history under /audit.
func WithAuditLog(log AuditLog) Option {
	return func(h *Handler) {
		h.audit = log
	}
}

func New(svc Service, reports Reporter, exports Exporter, links Resolver, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		service:  svc,
		reports:  reports,
		exports:  exports,
		links:    links,
		logger:   logger,
		location: time.UTC,
		pageSize: pagination.PrimaryPageSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts registry endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/dwellings", func(r chi.Router) {
		r.Post("/", h.HandleCreateDwelling)
		r.Get("/", h.HandleListDwellings)
		r.Get("/{id}", h.HandleGetDwelling)
		r.Patch("/{id}", h.HandleUpdateDwelling)
		r.Delete("/{id}", h.HandleSoftDeleteDwelling)
		r.Get("/{id}/household-choices", h.HandleHouseholdChoices)
		r.Get("/{id}/records", h.HandleLinkedRecords)
	})
	r.Route("/records/{category}", func(r chi.Router) {
		r.Post("/", h.HandleCreateRecord)
		r.Get("/", h.HandleListRecords)
		r.Post("/batch", h.HandleBatchCreate)
		r.Get("/{id}", h.HandleGetRecord)
		r.Patch("/{id}", h.HandleUpdateRecord)
		r.Delete("/{id}", h.HandleSoftDeleteRecord)
	})
	r.Get("/reports/summary", h.HandleSummary)
	r.Get("/reports/{category}/details", h.HandleDetails)
	r.Get("/exports/{file}", h.HandleExport)
	r.Post("/exports/{file}", h.HandleUploadExport)
	r.Route("/catalogs/{kind}", func(r chi.Router) {
		r.Post("/", h.HandleCreateCatalogEntry)
		r.Get("/", h.HandleListCatalog)
		r.Patch("/{id}", h.HandleRenameCatalogEntry)
		r.Delete("/{id}", h.HandleDeleteCatalogEntry)
	})
	r.Post("/geometry/polygon", h.HandleCheckPolygon)
	if h.audit != nil {
		r.Get("/audit", h.HandleAuditTrail)
	}
}

// fail logs at a level matching the error class and writes the response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	attrs = append(attrs, "request_id", requestcontext.RequestID(ctx), "error", err)
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, msg, attrs...)
	} else {
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}

func (h *Handler) criteria(r *http.Request) (query.Criteria, error) {
	q := r.URL.Query()
	return query.ParseCriteria(q.Get("q"), q.Get("status"), q.Get("from"), q.Get("to"), h.location)
}

// pageParam reads ?page=; absent means 1. Pages past the end are allowed and
// come back empty.
func pageParam(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("page"))
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, dErrors.NewField(dErrors.CodeInvalidInput, "page", "page must be 1 or greater")
	}
	return n, nil
}

func dwellingIDParam(r *http.Request) (id.DwellingID, error) {
	return id.ParseDwellingID(chi.URLParam(r, "id"))
}

func categoryParam(r *http.Request) (models.Category, error) {
	return models.ParseBeneficiaryCategory(chi.URLParam(r, "category"))
}

// HandleCreateDwelling handles POST /dwellings.
func (h *Handler) HandleCreateDwelling(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[CreateDwellingRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	d, err := h.service.CreateDwelling(ctx, req.Draft())
	if err != nil {
		h.fail(ctx, w, "failed to create dwelling", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, h.dwellingResponse(d))
}

// HandleListDwellings handles GET /dwellings.
func (h *Handler) HandleListDwellings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, err := h.criteria(r)
	if err != nil {
		h.fail(ctx, w, "invalid dwelling filters", err)
		return
	}
	page, err := pageParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid page", err)
		return
	}
	list, err := h.service.ListDwellings(ctx, c)
	if err != nil {
		h.fail(ctx, w, "failed to list dwellings", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.dwellingPage(pagination.Paginate(list, page, h.pageSize)))
}

// HandleGetDwelling handles GET /dwellings/{id}.
func (h *Handler) HandleGetDwelling(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dwellingID, err := dwellingIDParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid dwelling id", err)
		return
	}
	d, err := h.service.GetDwelling(ctx, dwellingID)
	if err != nil {
		h.fail(ctx, w, "failed to get dwelling", err, "dwelling_id", dwellingID.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.dwellingResponse(d))
}

// HandleUpdateDwelling handles PATCH /dwellings/{id}.
func (h *Handler) HandleUpdateDwelling(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dwellingID, err := dwellingIDParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid dwelling id", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateDwellingRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	d, err := h.service.UpdateDwelling(ctx, dwellingID, req.Patch())
	if err != nil {
		h.fail(ctx, w, "failed to update dwelling", err, "dwelling_id", dwellingID.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.dwellingResponse(d))
}

// HandleSoftDeleteDwelling handles DELETE /dwellings/{id}. The dwelling is
// marked inactive and its records are left as they are.
func (h *Handler) HandleSoftDeleteDwelling(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dwellingID, err := dwellingIDParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid dwelling id", err)
		return
	}
	d, err := h.service.SoftDeleteDwelling(ctx, dwellingID)
	if err != nil {
		h.fail(ctx, w, "failed to delete dwelling", err, "dwelling_id", dwellingID.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.dwellingResponse(d))
}

// HandleHouseholdChoices handles GET /dwellings/{id}/household-choices.
func (h *Handler) HandleHouseholdChoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dwellingID, err := dwellingIDParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid dwelling id", err)
		return
	}
	choices, err := h.service.HouseholdChoices(ctx, dwellingID)
	if err != nil {
		h.fail(ctx, w, "failed to resolve household", err, "dwelling_id", dwellingID.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ChoicesResponse{DwellingID: dwellingID, Choices: choices})
}

// HandleLinkedRecords handles GET /dwellings/{id}/records.
func (h *Handler) HandleLinkedRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dwellingID, err := dwellingIDParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid dwelling id", err)
		return
	}
	linked, err := h.service.LinkedRecords(ctx, dwellingID)
	if err != nil {
		h.fail(ctx, w, "failed to list linked records", err, "dwelling_id", dwellingID.String())
		return
	}
	resp := LinkedRecordsResponse{DwellingID: dwellingID, Records: make(map[models.Category][]RecordResponse, len(linked))}
	for category, list := range linked {
		resp.Records[category] = h.recordResponses(list)
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreateRecord handles POST /records/{category}.
func (h *Handler) HandleCreateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, err := categoryParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid category", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[CreateRecordRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	rec, err := h.service.CreateRecord(ctx, category, req.Input())
	if err != nil {
		h.fail(ctx, w, "failed to create record", err, "category", string(category))
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, h.recordResponse(rec))
}

// HandleBatchCreate handles POST /records/{category}/batch. Either every draft
// is stored or none is.
func (h *Handler) HandleBatchCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, err := categoryParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid category", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[BatchCreateRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	created, err := h.service.BatchCreate(ctx, category, req.DwellingID(), req.Inputs())
	if err != nil {
		h.fail(ctx, w, "batch create rejected", err,
			"category", string(category),
			"drafts", len(req.Drafts),
		)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, BatchCreateResponse{Created: h.recordResponses(created)})
}

// HandleListRecords handles GET /records/{category}.
func (h *Handler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, err := categoryParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid category", err)
		return
	}
	c, err := h.criteria(r)
	if err != nil {
		h.fail(ctx, w, "invalid record filters", err)
		return
	}
	page, err := pageParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid page", err)
		return
	}
	list, err := h.service.ListRecords(ctx, category, c)
	if err != nil {
		h.fail(ctx, w, "failed to list records", err, "category", string(category))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.recordPage(pagination.Paginate(list, page, h.pageSize)))
}

func (h *Handler) recordParams(r *http.Request) (models.Category, id.RecordID, error) {
	category, err := categoryParam(r)
	if err != nil {
		return "", id.RecordID{}, err
	}
	recordID, err := id.ParseRecordID(chi.URLParam(r, "id"))
	if err != nil {
		return "", id.RecordID{}, err
	}
	return category, recordID, nil
}

// HandleGetRecord handles GET /records/{category}/{id}.
func (h *Handler) HandleGetRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, recordID, err := h.recordParams(r)
	if err != nil {
		h.fail(ctx, w, "invalid record path", err)
		return
	}
	rec, err := h.service.GetRecord(ctx, category, recordID)
	if err != nil {
		h.fail(ctx, w, "failed to get record", err, "record_id", recordID.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.recordResponse(rec))
}

// HandleUpdateRecord handles PATCH /records/{category}/{id}.
func (h *Handler) HandleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, recordID, err := h.recordParams(r)
	if err != nil {
		h.fail(ctx, w, "invalid record path", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateRecordRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	rec, err := h.service.UpdateRecord(ctx, category, recordID, req.Patch())
	if err != nil {
		h.fail(ctx, w, "failed to update record", err, "record_id", recordID.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.recordResponse(rec))
}

// HandleSoftDeleteRecord handles DELETE /records/{category}/{id}.
func (h *Handler) HandleSoftDeleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, recordID, err := h.recordParams(r)
	if err != nil {
		h.fail(ctx, w, "invalid record path", err)
		return
	}
	rec, err := h.service.SoftDeleteRecord(ctx, category, recordID)
	if err != nil {
		h.fail(ctx, w, "failed to delete record", err, "record_id", recordID.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.recordResponse(rec))
}

// HandleSummary handles GET /reports/summary?q=&status=&from=&to=. The term
// filters the counted records the same way it filters list views.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, err := h.criteria(r)
	if err != nil {
		h.fail(ctx, w, "invalid report filters", err)
		return
	}
	summary, err := h.reports.Summarize(ctx, c)
	if err != nil {
		h.fail(ctx, w, "failed to compute report", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}

// HandleDetails handles GET /reports/{category}/details. status, from and to
// are the report's filters; q, detail_status and page belong to the
// drill-down.
func (h *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, err := models.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		h.fail(ctx, w, "invalid category", err)
		return
	}
	c, err := h.criteria(r)
	if err != nil {
		h.fail(ctx, w, "invalid report filters", err)
		return
	}
	dq := report.DetailQuery{Term: c.Term}
	if raw := r.URL.Query().Get("detail_status"); raw != "" {
		if dq.Status, err = models.ParseStatusFilter(raw); err != nil {
			h.fail(ctx, w, "invalid drill-down status", err)
			return
		}
	}
	if dq.Page, err = pageParam(r); err != nil {
		h.fail(ctx, w, "invalid page", err)
		return
	}

	if category == models.CategoryDwelling {
		page, err := h.reports.DwellingDetails(ctx, c.WithTerm(""), dq)
		if err != nil {
			h.fail(ctx, w, "failed to list report details", err, "category", string(category))
			return
		}
		httputil.WriteJSON(w, http.StatusOK, h.dwellingPage(page))
		return
	}
	page, err := h.reports.RecordDetails(ctx, category, c.WithTerm(""), dq)
	if err != nil {
		h.fail(ctx, w, "failed to list report details", err, "category", string(category))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.recordPage(page))
}

// exportParams splits "merit.csv" into category and format.
func (h *Handler) exportParams(r *http.Request) (models.Category, export.Format, query.Criteria, error) {
	file := chi.URLParam(r, "file")
	name, ext, found := strings.Cut(file, ".")
	if !found {
		return "", "", query.Criteria{}, dErrors.NewField(dErrors.CodeInvalidInput, "file", "export path must be <category>.csv or <category>.xlsx")
	}
	category, err := models.ParseCategory(name)
	if err != nil {
		return "", "", query.Criteria{}, err
	}
	format, err := export.ParseFormat(ext)
	if err != nil {
		return "", "", query.Criteria{}, err
	}
	c, err := h.criteria(r)
	if err != nil {
		return "", "", query.Criteria{}, err
	}
	return category, format, c, nil
}

// HandleExport handles GET /exports/{category}.{csv|xlsx} and streams the file.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, format, c, err := h.exportParams(r)
	if err != nil {
		h.fail(ctx, w, "invalid export request", err)
		return
	}
	f, err := h.exports.Export(ctx, category, format, c)
	if err != nil {
		h.fail(ctx, w, "failed to export", err, "category", string(category))
		return
	}
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(f.Data); err != nil {
		h.logger.WarnContext(ctx, "failed to write export body",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

// HandleUploadExport handles POST /exports/{category}.{csv|xlsx}: the export
// is written to object storage instead of the response.
func (h *Handler) HandleUploadExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, format, c, err := h.exportParams(r)
	if err != nil {
		h.fail(ctx, w, "invalid export request", err)
		return
	}
	f, err := h.exports.Export(ctx, category, format, c)
	if err != nil {
		h.fail(ctx, w, "failed to export", err, "category", string(category))
		return
	}
	key, err := h.exports.Upload(ctx, f)
	if err != nil {
		h.fail(ctx, w, "failed to upload export", err, "name", f.Name)
		return
	}
	h.logger.InfoContext(ctx, "export uploaded",
		"request_id", requestcontext.RequestID(ctx),
		"key", key,
		"rows", f.Rows,
	)
	httputil.WriteJSON(w, http.StatusCreated, UploadResponse{Name: f.Name, Key: key, Rows: f.Rows})
}

func kindParam(r *http.Request) (models.CatalogKind, error) {
	return models.ParseCatalogKind(chi.URLParam(r, "kind"))
}

// HandleCreateCatalogEntry handles POST /catalogs/{kind}.
func (h *Handler) HandleCreateCatalogEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind, err := kindParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid catalog kind", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[CatalogEntryRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	entry, err := h.service.CreateCatalogEntry(ctx, kind, req.Code, req.Name)
	if err != nil {
		h.fail(ctx, w, "failed to create catalog entry", err, "kind", string(kind))
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, entry)
}

// HandleListCatalog handles GET /catalogs/{kind}.
func (h *Handler) HandleListCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind, err := kindParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid catalog kind", err)
		return
	}
	entries, err := h.service.ListCatalog(ctx, kind)
	if err != nil {
		h.fail(ctx, w, "failed to list catalog", err, "kind", string(kind))
		return
	}
	if entries == nil {
		entries = []*models.CatalogEntry{}
	}
	httputil.WriteJSON(w, http.StatusOK, CatalogListResponse{Kind: kind, Entries: entries})
}

// HandleRenameCatalogEntry handles PATCH /catalogs/{kind}/{id}.
func (h *Handler) HandleRenameCatalogEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind, err := kindParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid catalog kind", err)
		return
	}
	entryID, err := id.ParseCatalogEntryID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(ctx, w, "invalid catalog entry id", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[RenameCatalogEntryRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	entry, err := h.service.RenameCatalogEntry(ctx, kind, entryID, req.Name)
	if err != nil {
		h.fail(ctx, w, "failed to rename catalog entry", err, "kind", string(kind))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, entry)
}

// HandleDeleteCatalogEntry handles DELETE /catalogs/{kind}/{id}.
func (h *Handler) HandleDeleteCatalogEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind, err := kindParam(r)
	if err != nil {
		h.fail(ctx, w, "invalid catalog kind", err)
		return
	}
	entryID, err := id.ParseCatalogEntryID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(ctx, w, "invalid catalog entry id", err)
		return
	}
	if err := h.service.DeleteCatalogEntry(ctx, kind, entryID); err != nil {
		h.fail(ctx, w, "failed to delete catalog entry", err, "kind", string(kind))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCheckPolygon handles POST /geometry/polygon.
func (h *Handler) HandleCheckPolygon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[PolygonRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PolygonResponse{
		Points:           req.polygon,
		AreaSquareMeters: req.polygon.AreaSquareMeters(),
	})
}
