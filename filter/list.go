package filter

import (
	"slices"

	nt "zupos/entity"
)

// Add returns filters with a blank Contains filter on the first filterable column appended.
// Filters are returned unchanged when no column is filterable.
func Add(filters []nt.Filter, columns []nt.Column) []nt.Filter {

	for _, col := range columns {
		if col.Filterable {
			return append(slices.Clone(filters), nt.Filter{Field: col.Field, Op: nt.Contains, Value: ""})
		}
	}
	return filters
}

// Update returns filters with the one at idx replaced, ignoring a bad idx.
func Update(filters []nt.Filter, idx int, flt nt.Filter) []nt.Filter {

	if idx < 0 || idx >= len(filters) {
		return filters
	}

	updated := slices.Clone(filters)
	updated[idx] = flt
	return updated
}

// Remove returns filters without the one at idx, ignoring a bad idx.
func Remove(filters []nt.Filter, idx int) []nt.Filter {

	if idx < 0 || idx >= len(filters) {
		return filters
	}
	return slices.Delete(slices.Clone(filters), idx, idx+1)
}
