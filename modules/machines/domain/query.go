package domain

// SortOrder controls ordering of machine listings by running state.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAsc
	SortDesc
)

// MachineQuery is an immutable set of listing parameters. The zero value from
// NewMachineQuery lists every machine, first page. With* methods return a
// modified copy; callers never mutate a query in place.
type MachineQuery struct {
	factorySectionID *int64
	page             int
	limit            int
	runningSort      SortOrder
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func NewMachineQuery() MachineQuery {
	return MachineQuery{page: 1, limit: defaultPageSize}
}

// WithFactorySection restricts the listing to one factory section.
func (q MachineQuery) WithFactorySection(sectionID int64) MachineQuery {
	q.factorySectionID = &sectionID
	return q
}

func (q MachineQuery) WithPage(page, limit int) MachineQuery {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	q.page = page
	q.limit = limit
	return q
}

// WithRunningSort orders results by the running flag.
func (q MachineQuery) WithRunningSort(order SortOrder) MachineQuery {
	q.runningSort = order
	return q
}

func (q MachineQuery) FactorySectionID() *int64 { return q.factorySectionID }
func (q MachineQuery) Page() int                { return q.page }
func (q MachineQuery) Limit() int               { return q.limit }
func (q MachineQuery) RunningSort() SortOrder   { return q.runningSort }

// Offset is the row offset the page maps to.
func (q MachineQuery) Offset() int {
	return (q.page - 1) * q.limit
}

// MachinePartFilter narrows machine part listings. Zero value means no
// filtering. PartName is matched as a case-insensitive substring after the
// store query, the way the dashboard filters by name.
type MachinePartFilter struct {
	MachineID *string
	PartID    *string
	PartName  string
}
