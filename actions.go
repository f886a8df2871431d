package zupos

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "zupos/entity"
	"zupos/grid"
	"zupos/style"
)

var (
	_ grid.Action[nt.StoreDef] = viewAction{}
	_ grid.Action[nt.StoreDef] = editAction{}
	_ grid.Action[nt.StoreDef] = deleteAction{}
	_ grid.Styled              = deleteAction{}
)

// viewAction shows every field of a store.
type viewAction struct{}

func (viewAction) Id() string                { return "view" }
func (viewAction) Label() string             { return "View" }
func (viewAction) Key() string               { return "v" }
func (viewAction) Hidden(nt.StoreDef) bool   { return false }
func (viewAction) Disabled(nt.StoreDef) bool { return false }

func (viewAction) Run(sd nt.StoreDef) tea.Cmd {
	return func() tea.Msg { return viewMsg{store: sd} }
}

// editAction opens the drawer on a store.
type editAction struct{}

func (editAction) Id() string                { return "edit" }
func (editAction) Label() string             { return "Edit" }
func (editAction) Key() string               { return "e" }
func (editAction) Hidden(nt.StoreDef) bool   { return false }
func (editAction) Disabled(nt.StoreDef) bool { return false }

func (editAction) Run(sd nt.StoreDef) tea.Cmd {
	return func() tea.Msg { return editMsg{store: sd} }
}

// deleteAction asks to confirm removing a store.
type deleteAction struct{}

func (deleteAction) Id() string                { return "delete" }
func (deleteAction) Label() string             { return "Delete" }
func (deleteAction) Key() string               { return "d" }
func (deleteAction) Hidden(nt.StoreDef) bool   { return false }
func (deleteAction) Disabled(nt.StoreDef) bool { return false }
func (deleteAction) Style() lipgloss.Style     { return style.ErrorStyle }

func (deleteAction) Run(sd nt.StoreDef) tea.Cmd {
	return func() tea.Msg { return deleteMsg{store: sd} }
}

// statusRenderer shows the status column with the configured labels.
type statusRenderer struct {
	labels style.StatusLabels
}

func (rdr statusRenderer) Render(val nt.Value, sd nt.StoreDef, col nt.Column) string {
	return rdr.labels.Status(sd.Status)
}
