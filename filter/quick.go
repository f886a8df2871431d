package filter

import (
	"slices"
	"strings"

	nt "zupos/entity"
)

// QuickFields returns the fields a quick search fans out to:
// every filterable text column, once per field.
func QuickFields(columns []nt.Column) (fields []string) {

	for _, col := range columns {
		if !col.Filterable || !col.IsText() {
			continue
		}
		if slices.Contains(fields, col.Field) {
			continue
		}
		fields = append(fields, col.Field)
	}
	return
}

// QuickSearch applies a free-text search to filters.
//
// Quick search owns every filterable text field: any filter on one of those
// fields is dropped, advanced or not, and filters on other fields are kept.
// A non-blank value then adds one Contains filter per owned field.
// A blank value only clears.
func QuickSearch(filters []nt.Filter, columns []nt.Column, value string) []nt.Filter {

	owned := QuickFields(columns)

	kept := make([]nt.Filter, 0, len(filters)+len(owned))
	for _, flt := range filters {
		if !slices.Contains(owned, flt.Field) {
			kept = append(kept, flt)
		}
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return kept
	}

	for _, field := range owned {
		kept = append(kept, nt.Filter{Field: field, Op: nt.Contains, Value: value})
	}
	return kept
}
