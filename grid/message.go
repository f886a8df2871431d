package grid

import nt "zupos/entity"

// The grid never changes its inputs itself. These messages carry proposed
// state to the owning screen, which applies it and hands it back.

// SortMsg proposes a new sort.
type SortMsg struct {
	Sort nt.Sort
}

// PageMsg proposes moving to a page.
type PageMsg struct {
	Page int
}

// PageSizeMsg proposes a new page size.
type PageSizeMsg struct {
	Size int
}

// SelectionMsg proposes a new selection.
type SelectionMsg struct {
	Keys Selection
}

// SizeMsg tells the grid how much room it has.
type SizeMsg struct {
	Width  int
	Height int
}
