package filter

import nt "zupos/entity"

// SizeMsg gives the panel the space it can center in.
type SizeMsg struct {
	Width  int
	Height int
}

// ApplyMsg proposes the enabled filters of the panel.
type ApplyMsg struct {
	Filters []nt.Filter
}

// CloseMsg asks the owner to close the panel without applying.
type CloseMsg struct{}
