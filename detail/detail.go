// Package detail shows every field of one row in a scrollable dialog.
package detail

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "zupos/entity"
	"zupos/style"
)

// Panel is the full record view of a row.
type Panel struct {
	title   string
	content []string

	width  int
	height int
	offset int
}

func NewPanel() Panel {
	return Panel{}
}

// Show loads row, listing columns first and then the raw record.
func (pnl Panel) Show(title string, columns []nt.Column, row nt.Row) Panel {

	pnl.title = title
	pnl.content = content(columns, row)
	pnl.offset = 0
	return pnl
}

// Lines returns the rendered content, one entry per line.
func (pnl Panel) Lines() []string {
	return pnl.content
}

// Offset is the first line shown.
func (pnl Panel) Offset() int {
	return pnl.offset
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.offset = min(pnl.offset, pnl.maxOffset())

	case tea.KeyPressMsg:
		return pnl.handleKey(msg.String())
	}

	return pnl, nil
}

// Layer centers the dialog over the screen.
func (pnl Panel) Layer() *lipgloss.Layer {

	visible := pnl.content[pnl.offset:]
	if rows := pnl.rows(); rows > 0 && len(visible) > rows {
		visible = visible[:rows]
	}

	body := style.TitleStyle.Render(pnl.title) + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		style.MutedStyle.Render(pnl.position())
	dialog := style.DialogStyle.Render(body)

	x := max(0, (pnl.width-lipgloss.Width(dialog))/2)
	y := max(0, (pnl.height-lipgloss.Height(dialog))/2)
	return lipgloss.NewLayer("detail", dialog).X(x).Y(y)
}

// unexported

func (pnl Panel) handleKey(key string) (Panel, tea.Cmd) {

	switch key {
	case "esc", "q", "enter", "v":
		return pnl, func() tea.Msg { return CloseMsg{} }
	case "up", "k":
		pnl.offset = max(pnl.offset-1, 0)
	case "down", "j":
		pnl.offset = min(pnl.offset+1, pnl.maxOffset())
	case "pgup":
		pnl.offset = max(pnl.offset-pnl.rows(), 0)
	case "pgdown":
		pnl.offset = min(pnl.offset+pnl.rows(), pnl.maxOffset())
	case "home":
		pnl.offset = 0
	case "end":
		pnl.offset = pnl.maxOffset()
	}
	return pnl, nil
}

// rows is the number of content lines fitting the dialog, 0 when unsized.
func (pnl Panel) rows() int {
	if pnl.height == 0 {
		return 0
	}
	// border, padding, title and position lines
	return max(pnl.height-10, 1)
}

func (pnl Panel) maxOffset() int {
	rows := pnl.rows()
	if rows == 0 {
		return 0
	}
	return max(len(pnl.content)-rows, 0)
}

func (pnl Panel) position() string {
	if len(pnl.content) == 0 {
		return "esc close"
	}
	last := pnl.offset + len(pnl.content)
	if rows := pnl.rows(); rows > 0 {
		last = min(pnl.offset+rows, len(pnl.content))
	}
	return fmt.Sprintf("%d–%d of %d lines · esc close", pnl.offset+1, last, len(pnl.content))
}

func content(columns []nt.Column, row nt.Row) (lines []string) {

	width := 0
	for _, col := range columns {
		width = max(width, lipgloss.Width(col.Label))
	}

	for _, col := range columns {
		val := nt.Value{Raw: row.Value(col.Field)}
		label := style.MutedStyle.Render(fmt.Sprintf("%-*s", width, col.Label))
		lines = append(lines, label+"  "+val.Display())
	}

	var buf strings.Builder
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(row)
	if err != nil {
		return append(lines, "", style.ErrorStyle.Render("record not shown: "+err.Error()))
	}

	lines = append(lines, "")
	return append(lines, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")...)
}
