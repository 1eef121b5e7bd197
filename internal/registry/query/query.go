// Package query holds the filter predicates shared by list views and reports.
// Reports call the same Match function as the list endpoints so the two can
// never disagree about which records are in scope.
package query

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"wardregistry/internal/registry/models"
	dErrors "wardregistry/pkg/domain-errors"
)

// DateLayout is the calendar-day format accepted for range bounds.
const DateLayout = "2006-01-02"

// Record is anything with a lifecycle status and an activity timestamp.
type Record interface {
	LifecycleStatus() models.Status
	ActivityAt() time.Time
}

// Fields is the searchable text of one record. Folded values match
// case-insensitively; Exact values are identifiers and match as raw substrings.
type Fields struct {
	Folded []string
	Exact  []string
}

// Indexer extracts a record's searchable fields.
type Indexer[T Record] func(T) Fields

// Criteria combines a search term, a status filter and an optional activity range.
type Criteria struct {
	Term   string
	Status models.StatusFilter
	From   *time.Time
	To     *time.Time
}

// WithoutRange drops the date bounds, keeping term and status.
func (c Criteria) WithoutRange() Criteria {
	c.From, c.To = nil, nil
	return c
}

// WithTerm replaces the search term.
func (c Criteria) WithTerm(term string) Criteria {
	c.Term = term
	return c
}

// MatchesTerm reports whether any field contains term. An empty term matches everything.
func MatchesTerm(f Fields, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	for _, v := range f.Exact {
		if strings.Contains(v, term) {
			return true
		}
	}
	folded := fold(term)
	for _, v := range f.Folded {
		if strings.Contains(fold(v), folded) {
			return true
		}
	}
	return false
}

func fold(s string) string {
	// a Caser carries state, so each call gets its own
	return cases.Fold().String(s)
}

// InDateRange reports whether activity falls inside [from, endOfDay(to)].
// Nil bounds are open.
func InDateRange(activity time.Time, from, to *time.Time) bool {
	if from != nil && activity.Before(*from) {
		return false
	}
	if to != nil && activity.After(EndOfDay(*to)) {
		return false
	}
	return true
}

// EndOfDay is 23:59:59.999 on t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Match applies every predicate in c to rec.
func Match[T Record](c Criteria, rec T, index Indexer[T]) bool {
	if !c.Status.Matches(rec.LifecycleStatus()) {
		return false
	}
	if !InDateRange(rec.ActivityAt(), c.From, c.To) {
		return false
	}
	return MatchesTerm(index(rec), c.Term)
}

// Filter keeps the records matching c, preserving order.
func Filter[T Record](items []T, c Criteria, index Indexer[T]) []T {
	out := make([]T, 0, len(items))
	for _, rec := range items {
		if Match(c, rec, index) {
			out = append(out, rec)
		}
	}
	return out
}

// Search is Filter without a date range.
func Search[T Record](items []T, term string, status models.StatusFilter, index Indexer[T]) []T {
	return Filter(items, Criteria{Term: term, Status: status}, index)
}

// DateRange keeps records whose activity timestamp falls inside the bounds.
func DateRange[T Record](items []T, from, to *time.Time) []T {
	out := make([]T, 0, len(items))
	for _, rec := range items {
		if InDateRange(rec.ActivityAt(), from, to) {
			out = append(out, rec)
		}
	}
	return out
}

// ParseDate reads a YYYY-MM-DD bound as midnight in loc. Empty input is an open bound.
func ParseDate(field, s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return nil, dErrors.NewField(dErrors.CodeInvalidInput, field, "date must be YYYY-MM-DD")
	}
	return &t, nil
}

// ParseCriteria builds Criteria from raw query-string values.
func ParseCriteria(term, status, from, to string, loc *time.Location) (Criteria, error) {
	sf, err := models.ParseStatusFilter(status)
	if err != nil {
		return Criteria{}, err
	}
	fromT, err := ParseDate("from", from, loc)
	if err != nil {
		return Criteria{}, err
	}
	toT, err := ParseDate("to", to, loc)
	if err != nil {
		return Criteria{}, err
	}
	if fromT != nil && toT != nil && toT.Before(*fromT) {
		return Criteria{}, dErrors.NewField(dErrors.CodeInvalidInput, "to", "end date is before start date")
	}
	return Criteria{Term: strings.TrimSpace(term), Status: sf, From: fromT, To: toT}, nil
}
