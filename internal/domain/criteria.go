package domain

// StatusFilter selects sessions by liveness
type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

// SortBy names the comparator applied after pinning and workspace order
type SortBy string

const (
	SortByCreated SortBy = "created"
	SortByStatus  SortBy = "status"
	SortByTitle   SortBy = "title"
)

// SortOrder is the direction of the SortBy comparator
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// NoTemplateSentinel is the template filter value matching sessions without a label
const NoTemplateSentinel = "_no_template_"

// AllTemplates is the template filter value that places no constraint
const AllTemplates = "all"

// FilterCriteria holds the active filters and sort settings of a list view
type FilterCriteria struct {
	PinnedOnly bool
	Search     string
	SortBy     SortBy
	SortOrder  SortOrder
	Status     StatusFilter
	// Templates holds one label (single-value match) or several (any may match).
	// Empty, or the single value "all", places no constraint.
	Templates []string
	// Workspace is an exact workspace name; empty or "all" places no constraint.
	Workspace string
}

// DefaultFilterCriteria returns the permissive criteria used when nothing is set
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		SortBy:    SortByCreated,
		SortOrder: SortDesc,
		Status:    StatusAll,
	}
}

// Normalize returns a copy with missing or unknown values replaced by defaults
func (c FilterCriteria) Normalize() FilterCriteria {
	switch c.Status {
	case StatusAll, StatusActive, StatusInactive:
	default:
		c.Status = StatusAll
	}
	switch c.SortBy {
	case SortByCreated, SortByStatus, SortByTitle:
	default:
		c.SortBy = SortByCreated
	}
	switch c.SortOrder {
	case SortAsc, SortDesc:
	default:
		c.SortOrder = SortDesc
	}
	if len(c.Templates) > 0 {
		c.Templates = append([]string(nil), c.Templates...)
	}
	return c
}

// WithStatus returns a copy of the criteria using the given status
func (c FilterCriteria) WithStatus(status StatusFilter) FilterCriteria {
	c.Status = status
	return c
}

// WithSearch returns a copy of the criteria using the given search text
func (c FilterCriteria) WithSearch(search string) FilterCriteria {
	c.Search = search
	return c
}
