package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	nt "zupos/entity"
)

// Apply returns the rows satisfying every filter, in input order.
// An empty filter list returns rows unchanged.
func Apply[R nt.Row](rows []R, filters []nt.Filter) []R {

	if len(filters) == 0 {
		return rows
	}

	mt := newMatcher()
	kept := make([]R, 0, len(rows))
	for _, row := range rows {
		if mt.all(row, filters) {
			kept = append(kept, row)
		}
	}
	return kept
}

// Match reports whether row satisfies every filter.
func Match(row nt.Row, filters []nt.Filter) bool {
	return newMatcher().all(row, filters)
}

// unexported

// matcher holds a caser, which is stateful and not shared across goroutines.
type matcher struct {
	lower cases.Caser
}

func newMatcher() matcher {
	return matcher{lower: cases.Lower(language.Und)}
}

func (mt matcher) all(row nt.Row, filters []nt.Filter) bool {
	for _, flt := range filters {
		if !mt.one(row, flt) {
			return false
		}
	}
	return true
}

func (mt matcher) one(row nt.Row, flt nt.Filter) bool {

	val := nt.Value{Raw: row.Value(flt.Field)}

	switch flt.Op {
	case nt.Equals:
		return val.Equal(flt.Value)
	case nt.IsEmpty:
		return val.IsEmpty()
	case nt.IsNotEmpty:
		return !val.IsEmpty()
	}

	have := mt.lower.String(val.String())
	want := mt.lower.String(nt.Value{Raw: flt.Value}.String())

	switch flt.Op {
	case nt.Contains:
		return strings.Contains(have, want)
	case nt.StartsWith:
		return strings.HasPrefix(have, want)
	case nt.EndsWith:
		return strings.HasSuffix(have, want)
	}

	// unknown operators do not narrow
	return true
}
