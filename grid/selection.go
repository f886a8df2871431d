package grid

import (
	"slices"

	nt "zupos/entity"
)

// Check is the state of the select-all checkbox.
type Check int

const (
	Unchecked Check = iota
	Indeterminate
	Checked
)

// Selection is an ordered set of selected row keys.
type Selection []string

// Has reports whether key is selected.
func (sel Selection) Has(key string) bool {
	return slices.Contains(sel, key)
}

// Toggle returns the selection with key added or removed.
func (sel Selection) Toggle(key string) Selection {

	idx := slices.Index(sel, key)
	if idx < 0 {
		return append(slices.Clone(sel), key)
	}
	return slices.Delete(slices.Clone(sel), idx, idx+1)
}

// Remove returns the selection without key.
func (sel Selection) Remove(key string) Selection {

	if !sel.Has(key) {
		return sel
	}
	return sel.Toggle(key)
}

// SelectAll returns the keys of the visible rows only.
func SelectAll[R nt.Row](visible []R) Selection {

	sel := make(Selection, 0, len(visible))
	for _, row := range visible {
		sel = append(sel, row.Key())
	}
	return sel
}

// Header gives the select-all checkbox state for the visible rows.
func Header[R nt.Row](sel Selection, visible []R) Check {

	count := 0
	for _, row := range visible {
		if sel.Has(row.Key()) {
			count++
		}
	}

	switch {
	case count == 0:
		return Unchecked
	case count < len(visible):
		return Indeterminate
	}
	return Checked
}

// Box renders a checkbox state.
func (chk Check) Box() string {
	switch chk {
	case Checked:
		return "[x]"
	case Indeterminate:
		return "[-]"
	}
	return "[ ]"
}
