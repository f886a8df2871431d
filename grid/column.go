package grid

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "zupos/entity"
)

// Renderer formats a cell of a column for one row.
type Renderer[R nt.Row] interface {
	Render(val nt.Value, row R, col nt.Column) string
}

// Column pairs a column definition with an optional renderer.
type Column[R nt.Row] struct {
	nt.Column
	Renderer Renderer[R]
}

// Columns attaches renderers, keyed by column id, to column definitions.
func Columns[R nt.Row](defs []nt.Column, renderers map[string]Renderer[R]) []Column[R] {

	cols := make([]Column[R], len(defs))
	for i, def := range defs {
		cols[i] = Column[R]{Column: def, Renderer: renderers[def.Id]}
	}
	return cols
}

// Action is a per-row operation offered as a button.
// Hidden and Disabled are evaluated per row on every render.
type Action[R nt.Row] interface {
	Id() string
	Label() string
	// Key is the keystroke that runs the action on the focused row.
	Key() string
	Hidden(row R) bool
	Disabled(row R) bool
	Run(row R) tea.Cmd
}

// Styled is implemented by actions wanting their own color.
type Styled interface {
	Style() lipgloss.Style
}

// defs strips renderers for packages working on plain definitions.
func defs[R nt.Row](cols []Column[R]) []nt.Column {

	out := make([]nt.Column, len(cols))
	for i, col := range cols {
		out[i] = col.Column
	}
	return out
}
