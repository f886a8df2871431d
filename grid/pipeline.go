package grid

import (
	nt "zupos/entity"
	"zupos/filter"
)

// Result is what the grid shows for one snapshot of its inputs.
type Result[R nt.Row] struct {
	// Visible are the rows on the current page.
	Visible []R
	// Filtered counts rows surviving the filters, across all pages.
	Filtered int
}

// Compute filters, then sorts, then takes the page of rows to show.
// The order is fixed; paging before sorting would show different rows.
// A non-positive size shows every filtered row.
func Compute[R nt.Row](rows []R, filters []nt.Filter, st nt.Sort, page, size int) Result[R] {

	kept := filter.Apply(rows, filters)
	sorted := SortRows(kept, st)

	result := Result[R]{
		Visible:  sorted,
		Filtered: len(sorted),
	}
	if size <= 0 {
		return result
	}

	lo := min(max(page, 0)*size, len(sorted))
	hi := min(lo+size, len(sorted))
	result.Visible = sorted[lo:hi]

	return result
}
