// Package report rolls the registry up into per-category counts and sums.
//
// Nothing is cached: every call re-reads the stores and applies the same
// query.Match predicates the list endpoints use.
package report

import (
	"context"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	registrymetrics "wardregistry/internal/registry/metrics"
	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/pagination"
	"wardregistry/internal/registry/query"
	dErrors "wardregistry/pkg/domain-errors"
	"wardregistry/pkg/requestcontext"
)

const tracerName = "wardregistry/internal/registry/report"

// DwellingLister reads the dwelling collection.
type DwellingLister interface {
	List(ctx context.Context) ([]*models.Dwelling, error)
}

// RecordLister reads one beneficiary category.
type RecordLister interface {
	Category() models.Category
	List(ctx context.Context) ([]*models.BeneficiaryRecord, error)
}

// Highlight is the category-specific headline number.
type Highlight struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// CategorySummary is one row of the summary report.
type CategorySummary struct {
	Category         models.Category `json:"category"`
	Label            string          `json:"label"`
	Count            int             `json:"count"`
	Highlight        Highlight       `json:"highlight"`
	SubsidySum       int64           `json:"subsidy_sum"`
	AreaSquareMeters float64         `json:"area_square_meters,omitempty"`
}

// Summary is the full report for one set of filters.
type Summary struct {
	Status      models.StatusFilter `json:"status"`
	From        *time.Time          `json:"from,omitempty"`
	To          *time.Time          `json:"to,omitempty"`
	Categories  []CategorySummary   `json:"categories"`
	TotalBudget int64               `json:"total_budget"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// Category returns the row for c.
func (s *Summary) Category(c models.Category) (CategorySummary, bool) {
	for _, row := range s.Categories {
		if row.Category == c {
			return row, true
		}
	}
	return CategorySummary{}, false
}

type Engine struct {
	dwellings         DwellingLister
	records           map[models.Category]RecordLister
	addresses         query.AddressResolver
	metrics           *registrymetrics.Metrics
	tracer            trace.Tracer
	militaryHighlight string
	drillDownSize     int
}

type Option func(*Engine)

func WithMetrics(m *registrymetrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithMilitaryHighlight sets the rank code counted in the military highlight.
// Without it the most common rank is used.
func WithMilitaryHighlight(code string) Option {
	return func(e *Engine) {
		e.militaryHighlight = code
	}
}

// WithDrillDownPageSize overrides the drill-down page size.
func WithDrillDownPageSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.drillDownSize = n
		}
	}
}

func New(dwellings DwellingLister, records []RecordLister, addresses query.AddressResolver, opts ...Option) *Engine {
	e := &Engine{
		dwellings:     dwellings,
		records:       make(map[models.Category]RecordLister, len(records)),
		addresses:     addresses,
		tracer:        otel.Tracer(tracerName),
		drillDownSize: pagination.DrillDownPageSize,
	}
	for _, r := range records {
		e.records[r.Category()] = r
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Summarize computes every category's row and the combined budget under c.
func (e *Engine) Summarize(ctx context.Context, c query.Criteria) (*Summary, error) {
	ctx, span := e.tracer.Start(ctx, "report.Summarize", trace.WithAttributes(
		attribute.String("report.status", string(c.Status)),
		attribute.Bool("report.bounded", c.From != nil || c.To != nil),
	))
	defer span.End()
	start := time.Now()
	if e.metrics != nil {
		defer e.metrics.ObserveReport(start)
	}

	out := &Summary{
		Status:      c.Status,
		From:        c.From,
		To:          c.To,
		GeneratedAt: requestcontext.Now(ctx),
	}

	dwellings, err := e.filteredDwellings(ctx, c)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	out.Categories = append(out.Categories, summarizeDwellings(dwellings))

	for _, category := range models.BeneficiaryCategories() {
		recs, err := e.filteredRecords(ctx, category, c)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		row := e.summarizeRecords(category, recs)
		out.Categories = append(out.Categories, row)
		if category.Monetary() {
			out.TotalBudget += row.SubsidySum
		}
	}

	span.SetAttributes(attribute.Int64("report.total_budget", out.TotalBudget))
	return out, nil
}

func (e *Engine) filteredDwellings(ctx context.Context, c query.Criteria) ([]*models.Dwelling, error) {
	all, err := e.dwellings.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read dwellings")
	}
	return query.Filter(all, c, query.DwellingFields), nil
}

func (e *Engine) filteredRecords(ctx context.Context, category models.Category, c query.Criteria) ([]*models.BeneficiaryRecord, error) {
	lister, ok := e.records[category]
	if !ok {
		return nil, nil
	}
	all, err := lister.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read "+string(category)+" records")
	}
	return query.Filter(all, c, query.BeneficiaryIndexer(e.addresses)), nil
}

func summarizeDwellings(list []*models.Dwelling) CategorySummary {
	row := CategorySummary{
		Category: models.CategoryDwelling,
		Label:    models.CategoryDwelling.Label(),
		Count:    len(list),
	}
	disputed := 0
	for _, d := range list {
		if d.Disputed {
			disputed++
		}
		row.AreaSquareMeters += d.Boundary.AreaSquareMeters()
	}
	row.Highlight = Highlight{Label: "disputed", Value: float64(disputed)}
	return row
}

func (e *Engine) summarizeRecords(category models.Category, list []*models.BeneficiaryRecord) CategorySummary {
	row := CategorySummary{
		Category: category,
		Label:    category.Label(),
		Count:    len(list),
	}
	for _, r := range list {
		row.SubsidySum += r.BudgetAmount()
	}
	if category == models.CategoryMilitary {
		row.Highlight = e.rankHighlight(list)
		return row
	}
	row.Highlight = Highlight{Label: "subsidy", Value: float64(row.SubsidySum)}
	return row
}

// rankHighlight counts records holding the configured rank, or the most
// common rank when none is configured. Ties go to the alphabetically first name.
func (e *Engine) rankHighlight(list []*models.BeneficiaryRecord) Highlight {
	type tally struct {
		name  string
		count int
	}
	byCode := map[string]*tally{}
	var keys []string
	for _, r := range list {
		key := r.Classification.Code
		if key == "" {
			key = r.Classification.Name
		}
		t, ok := byCode[key]
		if !ok {
			t = &tally{name: r.Classification.Name}
			byCode[key] = t
			keys = append(keys, key)
		}
		t.count++
	}

	if e.militaryHighlight != "" {
		if t, ok := byCode[e.militaryHighlight]; ok {
			return Highlight{Label: t.name, Value: float64(t.count)}
		}
		return Highlight{Label: e.militaryHighlight, Value: 0}
	}
	if len(keys) == 0 {
		return Highlight{Label: "", Value: 0}
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := byCode[keys[i]], byCode[keys[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		return a.name < b.name
	})
	top := byCode[keys[0]]
	return Highlight{Label: top.name, Value: float64(top.count)}
}
