package drawer

// SubmitMsg asks the owner to save values.
// The owner answers with ResultMsg once the save completes.
type SubmitMsg struct {
	Mode   Mode
	Values Values
}

// ResultMsg reports the outcome of a save started by SubmitMsg.
type ResultMsg struct {
	Err error
}

// ClosedMsg tells the owner the drawer has closed.
type ClosedMsg struct {
	Submitted bool
}

// SizeMsg gives the drawer the screen size it anchors against.
type SizeMsg struct {
	Width  int
	Height int
}
