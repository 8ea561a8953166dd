package logquery

// Filters is the predicate part of a query. Empty fields impose no constraint.
type Filters struct {
	FreeText   string `json:"freeText" query:"q"`
	Credential string `json:"credential" query:"credential"`
	Endpoint   string `json:"endpoint" query:"endpoint"`
	Status     string `json:"status" query:"status"`
}

func (f Filters) Active() bool {
	return f != Filters{}
}

// Spec is the full query: predicates plus a 1-based page.
type Spec struct {
	Filters
	Page int `json:"page"`
}

// Result is one page of a filtered collection.
type Result struct {
	Rows          []Row `json:"rows"`
	Page          int   `json:"page"`
	PageSize      int   `json:"pageSize"`
	TotalPages    int   `json:"totalPages"`
	FilteredCount int   `json:"filteredCount"`
	HasPrev       bool  `json:"hasPrev"`
	HasNext       bool  `json:"hasNext"`
}

// Facets are the distinct filter choices over the unfiltered collection.
type Facets struct {
	Credentials []string `json:"credentials"`
	Endpoints   []string `json:"endpoints"`
	Statuses    []int    `json:"statuses"`
}
