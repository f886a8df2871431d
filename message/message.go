// Package message holds messages shared between the screen and its panels.
package message

// ErrorMsg contains an error and what was being done
type ErrorMsg struct {
	Err    error
	Action string
}

// RefreshMsg signals something outside the update loop changed, such as a
// toast expiring
type RefreshMsg struct{}
