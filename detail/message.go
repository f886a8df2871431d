package detail

type SizeMsg struct {
	Width  int
	Height int
}

// CloseMsg asks the owner to hide the panel.
type CloseMsg struct{}
