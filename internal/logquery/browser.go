package logquery

import "github.com/Lead-Coder/api-rate-limit/internal/domain"

// Browser is the mutable query state behind the logs screen. Any change to
// the effective filters sends the page back to 1. Not safe for concurrent use.
type Browser struct {
	engine *Engine
	base   []domain.LogEntry
	facets Facets
	spec   Spec
}

func NewBrowser(engine *Engine) *Browser {
	return &Browser{
		engine: engine,
		spec:   Spec{Page: 1},
	}
}

// Load replaces the base collection. The page resets because the result set changed.
func (b *Browser) Load(logs []domain.LogEntry) {
	b.base = b.engine.Ingest(logs)
	b.facets = BuildFacets(b.base)
	b.spec.Page = 1
}

func (b *Browser) Base() []domain.LogEntry {
	return b.base
}

func (b *Browser) Spec() Spec {
	return b.spec
}

func (b *Browser) Facets() Facets {
	return b.facets
}

// SetFilters replaces all predicates and reports whether they changed.
func (b *Browser) SetFilters(f Filters) bool {
	if f == b.spec.Filters {
		return false
	}
	b.spec.Filters = f
	b.spec.Page = 1
	return true
}

func (b *Browser) SetFreeText(q string) bool {
	f := b.spec.Filters
	f.FreeText = q
	return b.SetFilters(f)
}

func (b *Browser) SetCredential(credential string) bool {
	f := b.spec.Filters
	f.Credential = credential
	return b.SetFilters(f)
}

func (b *Browser) SetEndpoint(endpoint string) bool {
	f := b.spec.Filters
	f.Endpoint = endpoint
	return b.SetFilters(f)
}

func (b *Browser) SetStatus(status string) bool {
	f := b.spec.Filters
	f.Status = status
	return b.SetFilters(f)
}

func (b *Browser) ClearFilters() bool {
	return b.SetFilters(Filters{})
}

// SetPage moves to page, clamped into the valid range, and returns the page used.
func (b *Browser) SetPage(page int) int {
	filtered := b.engine.Filter(b.base, b.spec.Filters)
	b.spec.Page = ClampPage(page, b.engine.TotalPages(len(filtered)))
	return b.spec.Page
}

func (b *Browser) NextPage() int {
	return b.SetPage(b.spec.Page + 1)
}

func (b *Browser) PrevPage() int {
	return b.SetPage(b.spec.Page - 1)
}

// View renders the current page.
func (b *Browser) View() Result {
	res, err := b.engine.Query(b.base, b.spec)
	if err != nil {
		// Every mutation keeps the page in range; page 1 always exists.
		b.spec.Page = 1
		res, _ = b.engine.Query(b.base, b.spec)
	}
	return res
}

// Reset drops the collection and all filters.
func (b *Browser) Reset() {
	b.base = nil
	b.facets = Facets{}
	b.spec = Spec{Page: 1}
}
