// Package logquery filters, orders and pages gateway logs for display.
package logquery

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/search"
)

const DefaultPageSize = 15

var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrPageOutOfRange  = errors.New("page out of range")
	ErrInvalidPageSize = errors.New("page size must be >= 1")
)

// Row is a log entry as displayed.
type Row = domain.LogEntry

// Engine is stateless; the same (logs, spec) always yields the same Result.
type Engine struct {
	pageSize int
}

type Option func(*Engine)

func WithPageSize(size int) Option {
	return func(e *Engine) {
		e.pageSize = size
	}
}

func New(opts ...Option) (*Engine, error) {
	e := &Engine{pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(e)
	}
	if e.pageSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, e.pageSize)
	}
	return e, nil
}

func (e *Engine) PageSize() int {
	return e.pageSize
}

// Ingest returns a copy of logs ordered newest first. Entries with equal
// timestamps keep their fetch order.
func (e *Engine) Ingest(logs []domain.LogEntry) []domain.LogEntry {
	out := slices.Clone(logs)
	slices.SortStableFunc(out, func(a, b domain.LogEntry) int {
		return cmp.Compare(b.TimestampMillis, a.TimestampMillis)
	})
	return out
}

// Filter applies all predicates of f. Order is preserved.
func (e *Engine) Filter(logs []domain.LogEntry, f Filters) []domain.LogEntry {
	return search.Filter(logs, predicate(f))
}

func predicate(f Filters) search.Predicate[domain.LogEntry] {
	return search.All[domain.LogEntry](
		func(l domain.LogEntry) bool {
			return search.ContainsFold(f.FreeText, l.Credential, l.Endpoint, l.SourceIP)
		},
		func(l domain.LogEntry) bool { return search.Equal(f.Credential, l.Credential) },
		func(l domain.LogEntry) bool { return search.Equal(f.Endpoint, l.Endpoint) },
		func(l domain.LogEntry) bool { return search.Equal(f.Status, strconv.Itoa(l.StatusCode)) },
	)
}

// TotalPages is the display page count: never below 1, even for an empty set.
func (e *Engine) TotalPages(filteredCount int) int {
	pages := (filteredCount + e.pageSize - 1) / e.pageSize
	return max(pages, 1)
}

// Query filters logs and returns the requested page. Callers clamp pages
// with ClampPage; out-of-range requests are reported, never sliced.
func (e *Engine) Query(logs []domain.LogEntry, spec Spec) (Result, error) {
	if spec.Page < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidPage, spec.Page)
	}

	filtered := e.Filter(logs, spec.Filters)
	total := e.TotalPages(len(filtered))
	if spec.Page > total {
		return Result{}, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, spec.Page, total)
	}

	start := (spec.Page - 1) * e.pageSize
	end := min(start+e.pageSize, len(filtered))

	return Result{
		Rows:          filtered[start:end],
		Page:          spec.Page,
		PageSize:      e.pageSize,
		TotalPages:    total,
		FilteredCount: len(filtered),
		HasPrev:       spec.Page > 1,
		HasNext:       spec.Page < total,
	}, nil
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	return max(1, min(page, max(totalPages, 1)))
}

// BuildFacets derives filter choices from the unfiltered collection.
func BuildFacets(logs []domain.LogEntry) Facets {
	return Facets{
		Credentials: search.Distinct(logs, func(l domain.LogEntry) string { return l.Credential }),
		Endpoints:   search.Distinct(logs, func(l domain.LogEntry) string { return l.Endpoint }),
		Statuses:    search.DistinctSorted(logs, func(l domain.LogEntry) int { return l.StatusCode }),
	}
}
