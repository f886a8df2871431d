package piece

import (
	tea "charm.land/bubbletea/v2"

	"zupos/board"
)

// Checkbox is a toggleable checkbox
type Checkbox struct {
	checked bool
	label   string
}

func NewCheckbox(checked bool, label string) Checkbox {
	return Checkbox{checked: checked, label: label}
}

func (c Checkbox) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	if kp, ok := msg.(tea.KeyPressMsg); ok {
		return c.press(kp.String())
	}
	return c, nil
}

func (c Checkbox) Checked() bool {
	return c.checked
}

func (c Checkbox) Focusable() bool {
	return true
}

func (c Checkbox) Render() string {
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}
	if c.label == "" {
		return box
	}
	return box + " " + c.label
}

func (c Checkbox) Value() string {
	if c.checked {
		return "true"
	}
	return "false"
}

func (c Checkbox) press(key string) (board.Piece, tea.Cmd) {
	switch key {
	case "t", "space", " ", "enter":
		c.checked = !c.checked
		return c, func() tea.Msg {
			return &CheckedMsg{Checked: c.checked}
		}
	}
	return c, nil
}
