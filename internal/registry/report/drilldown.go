package report

import (
	"context"

	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/pagination"
	"wardregistry/internal/registry/query"
	dErrors "wardregistry/pkg/domain-errors"
)

// DetailQuery is the drill-down view's own state. Term and Status belong to
// the drill-down, not the report; an empty Status falls back to DrillDownStatus.
type DetailQuery struct {
	Term   string
	Status models.StatusFilter
	Page   int
}

// DrillDownStatus is the status a drill-down opens with: active when the
// report shows all records, otherwise the report's own filter.
func DrillDownStatus(reportStatus models.StatusFilter) models.StatusFilter {
	if reportStatus == "" || reportStatus == models.StatusFilterAll {
		return models.StatusFilterActive
	}
	return reportStatus
}

// detailCriteria keeps the report's date range and swaps in the drill-down's
// term and status.
func detailCriteria(reportCriteria query.Criteria, q DetailQuery) query.Criteria {
	status := q.Status
	if status == "" {
		status = DrillDownStatus(reportCriteria.Status)
	}
	return query.Criteria{
		Term:   q.Term,
		Status: status,
		From:   reportCriteria.From,
		To:     reportCriteria.To,
	}
}

func (e *Engine) detailPage(q DetailQuery) int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

// DwellingDetails lists the dwellings behind the dwelling row of a report.
func (e *Engine) DwellingDetails(ctx context.Context, reportCriteria query.Criteria, q DetailQuery) (pagination.Page[*models.Dwelling], error) {
	ctx, span := e.tracer.Start(ctx, "report.DwellingDetails")
	defer span.End()

	list, err := e.filteredDwellings(ctx, detailCriteria(reportCriteria, q))
	if err != nil {
		return pagination.Page[*models.Dwelling]{}, err
	}
	return pagination.Paginate(list, e.detailPage(q), e.drillDownSize), nil
}

// RecordDetails lists the records behind one beneficiary row of a report.
func (e *Engine) RecordDetails(ctx context.Context, category models.Category, reportCriteria query.Criteria, q DetailQuery) (pagination.Page[*models.BeneficiaryRecord], error) {
	ctx, span := e.tracer.Start(ctx, "report.RecordDetails")
	defer span.End()

	if !category.IsBeneficiary() {
		return pagination.Page[*models.BeneficiaryRecord]{}, dErrors.NewField(dErrors.CodeInvalidInput, "category", "not a beneficiary category")
	}
	list, err := e.filteredRecords(ctx, category, detailCriteria(reportCriteria, q))
	if err != nil {
		return pagination.Page[*models.BeneficiaryRecord]{}, err
	}
	return pagination.Paginate(list, e.detailPage(q), e.drillDownSize), nil
}
