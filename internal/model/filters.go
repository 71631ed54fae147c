package model

// SortBy selects the ordering of the visible expense list.
type SortBy string

const (
	// SortByLatest orders expenses most recent first.
	SortByLatest SortBy = "latest"
	// SortByAmount orders expenses largest amount first.
	SortByAmount SortBy = "amount"
)

// Valid reports whether s is a known sort order.
func (s SortBy) Valid() bool {
	return s == SortByLatest || s == SortByAmount
}

// Filters is the transient view state controlling which expenses are shown
// and in what order. It is never persisted.
type Filters struct {
	CategoryID string
	SortBy     SortBy
	Search     string
}

// DefaultFilters returns the filter state used at startup and after a full
// data reset.
func DefaultFilters() Filters {
	return Filters{SortBy: SortByLatest}
}

// FilterPatch carries the fields of a partial filter update. Nil fields are
// left untouched by Merge.
type FilterPatch struct {
	CategoryID *string
	SortBy     *SortBy
	Search     *string
}

// Merge shallow-merges the patch into f and returns the result.
func (f Filters) Merge(patch FilterPatch) Filters {
	if patch.CategoryID != nil {
		f.CategoryID = *patch.CategoryID
	}
	if patch.SortBy != nil {
		f.SortBy = *patch.SortBy
	}
	if patch.Search != nil {
		f.Search = *patch.Search
	}
	return f
}
