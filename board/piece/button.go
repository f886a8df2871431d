package piece

import (
	tea "charm.land/bubbletea/v2"

	"zupos/board"
)

// Button is a pressable button
type Button struct {
	id    string
	label string
}

func NewButton(id, label string) Button {
	return Button{
		id:    id,
		label: label,
	}
}

func (b Button) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	if kp, ok := msg.(tea.KeyPressMsg); ok {
		return b.press(kp.String())
	}
	return b, nil
}

func (b Button) Focusable() bool {
	return true
}

func (b Button) Render() string {
	return "[" + b.label + "]"
}

func (b Button) Value() string {
	return b.id
}

func (b Button) press(key string) (board.Piece, tea.Cmd) {
	if key != "enter" && key != "space" && key != " " {
		return b, nil
	}
	return b, func() tea.Msg {
		return &PressedMsg{Id: b.id}
	}
}
