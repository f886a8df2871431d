package piece

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"zupos/board"
)

// Label is a read-only text cell, padded to width when width is set
type Label struct {
	text  string
	width int
	style lipgloss.Style
}

func NewLabel(text string, width int, stl lipgloss.Style) Label {
	return Label{text: text, width: width, style: stl}
}

func (l Label) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	return l, nil
}

func (l Label) Text() string {
	return l.text
}

func (l Label) Render() string {
	stl := l.style
	if l.width > 0 {
		stl = stl.Width(l.width)
	}
	return stl.Render(l.text)
}

func (l Label) Value() string {
	return l.text
}
