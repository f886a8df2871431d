package piece

import "zupos/board"

var (
	_ board.PieceMsg = (*CheckedMsg)(nil)
	_ board.PieceMsg = (*ChoiceMsg)(nil)
	_ board.PieceMsg = (*ValueChangedMsg)(nil)
	_ board.PieceMsg = (*PressedMsg)(nil)
)

// CheckedMsg is sent when a checkbox is toggled
type CheckedMsg struct {
	Rank    int
	File    int
	Checked bool
}

func (CheckedMsg) IsPieceMsg() {}
func (m *CheckedMsg) SetPosition(rank, file int) {
	m.Rank = rank
	m.File = file
}

// ChoiceMsg is sent when a choice moves to another option
type ChoiceMsg struct {
	Rank     int
	File     int
	Selected string
	Index    int
}

func (ChoiceMsg) IsPieceMsg() {}
func (m *ChoiceMsg) SetPosition(rank, file int) {
	m.Rank = rank
	m.File = file
}

// ValueChangedMsg is sent when a text input value changes
type ValueChangedMsg struct {
	Rank  int
	File  int
	Value string
}

func (ValueChangedMsg) IsPieceMsg() {}
func (m *ValueChangedMsg) SetPosition(rank, file int) {
	m.Rank = rank
	m.File = file
}

// PressedMsg is sent when a button is pressed
type PressedMsg struct {
	Rank int
	File int
	Id   string
}

func (PressedMsg) IsPieceMsg() {}
func (m *PressedMsg) SetPosition(rank, file int) {
	m.Rank = rank
	m.File = file
}
