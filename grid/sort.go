package grid

import (
	"slices"
	"strings"

	nt "zupos/entity"
)

// SortRows orders rows by the string form of one field.
// The sort is stable: equal keys keep their input order in either direction,
// and descending negates the ascending comparison rather than swapping operands.
// An inactive sort returns rows as given.
func SortRows[R nt.Row](rows []R, st nt.Sort) []R {

	if !st.Active() {
		return rows
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b R) int {
		cmp := strings.Compare(
			nt.Value{Raw: a.Value(st.Field)}.String(),
			nt.Value{Raw: b.Value(st.Field)}.String(),
		)
		if st.Desc {
			return -cmp
		}
		return cmp
	})
	return sorted
}

// NextSort is the sort after a header click on field:
// a new field starts ascending, the current field flips direction.
// There is no step that clears the sort.
func NextSort(current nt.Sort, field string) nt.Sort {

	if current.Field != field {
		return nt.Sort{Field: field}
	}
	return nt.Sort{Field: field, Desc: !current.Desc}
}
