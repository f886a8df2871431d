package filter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"zupos/board"
	"zupos/board/piece"
	nt "zupos/entity"
	"zupos/style"
)

const (
	fileEnabled = iota
	fileField
	fileOp
	fileValue
	fileDelete
)

const (
	pressAdd    = "add"
	pressApply  = "apply"
	pressClear  = "clear"
	pressCancel = "cancel"
	pressDelete = "delete"
)

const dialogWidth = 72

// Panel is a dialog for editing advanced filters.
// Each filter is one rank of the board: enabled, field, operator, value and
// delete; the last rank holds the dialog buttons.
type Panel struct {
	columns []nt.Column
	entries []entry
	board   board.Board

	width  int
	height int
}

type entry struct {
	filter  nt.Filter
	enabled bool
}

// NewPanel creates a panel offering the filterable columns.
func NewPanel(columns []nt.Column) Panel {

	pnl := Panel{}
	for _, col := range columns {
		if col.Filterable {
			pnl.columns = append(pnl.columns, col)
		}
	}
	pnl.board = pnl.buildBoard()
	return pnl
}

// Open loads filters into the panel, all enabled.
func (pnl Panel) Open(filters []nt.Filter) Panel {

	pnl.entries = nil
	for _, flt := range filters {
		pnl.entries = append(pnl.entries, entry{filter: flt, enabled: true})
	}
	pnl.board = pnl.buildBoard()
	return pnl
}

// Filters returns the enabled filters.
func (pnl Panel) Filters() (filters []nt.Filter) {

	filters = []nt.Filter{}
	for _, ent := range pnl.entries {
		if ent.enabled {
			filters = append(filters, ent.filter)
		}
	}
	return
}

func (pnl Panel) Init() tea.Cmd {
	return nil
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height

	case *piece.PressedMsg:
		return pnl.pressed(msg)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return pnl, func() tea.Msg { return CloseMsg{} }
		case "ctrl+s":
			return pnl.apply()
		}

		var cmd tea.Cmd
		pnl.board, cmd = pnl.board.Update(msg)
		pnl = pnl.sync()
		return pnl, cmd
	}

	return pnl, nil
}

// Layer renders the dialog centered in the panel's size.
func (pnl Panel) Layer() *lipgloss.Layer {

	var content strings.Builder
	content.WriteString(style.TitleStyle.Render("Filters") + "\n\n")
	if len(pnl.entries) == 0 {
		content.WriteString(style.MutedStyle.Render("No filters") + "\n")
	}
	content.WriteString(pnl.board.Render())
	content.WriteString("\n\n" + style.MutedStyle.Render(pnl.help()))

	dialog := style.DialogStyle.Width(dialogWidth).Render(content.String())

	hPad := max(0, (pnl.width-lipgloss.Width(dialog))/2)
	vPad := max(0, (pnl.height-lipgloss.Height(dialog))/2)

	return lipgloss.NewLayer("filter", dialog).X(hPad).Y(vPad)
}

// unexported

func (pnl Panel) pressed(msg *piece.PressedMsg) (Panel, tea.Cmd) {

	switch msg.Id {
	case pressAdd:
		filters := Add(pnl.raw(), pnl.columns)
		if len(filters) > len(pnl.entries) {
			pnl.entries = append(slices.Clone(pnl.entries), entry{filter: filters[len(filters)-1], enabled: true})
		}
		pnl.board = pnl.buildBoard().Focus(len(pnl.entries)-1, fileValue)

	case pressDelete:
		pnl.entries = slices.Delete(slices.Clone(pnl.entries), msg.Rank, msg.Rank+1)
		pnl.board = pnl.buildBoard().Focus(max(0, msg.Rank-1), fileDelete)

	case pressClear:
		pnl.entries = nil
		pnl.board = pnl.buildBoard()

	case pressApply:
		return pnl.apply()

	case pressCancel:
		return pnl, func() tea.Msg { return CloseMsg{} }
	}

	return pnl, nil
}

func (pnl Panel) apply() (Panel, tea.Cmd) {

	filters := pnl.Filters()
	return pnl, func() tea.Msg { return ApplyMsg{Filters: filters} }
}

// sync reads edited piece values back into entries.
func (pnl Panel) sync() Panel {

	entries := slices.Clone(pnl.entries)
	for i := range entries {
		rank := pnl.board.Rank(i)
		if len(rank) <= fileDelete {
			continue
		}

		if chk, ok := rank[fileEnabled].(piece.Checkbox); ok {
			entries[i].enabled = chk.Checked()
		}

		col, ok := pnl.columnByLabel(rank[fileField].Value())
		if ok {
			entries[i].filter.Field = col.Field
		}
		entries[i].filter.Op = nt.FilterOp(rank[fileOp].Value())
		entries[i].filter.Value = parseValue(col, rank[fileValue].Value())
	}

	pnl.entries = entries
	return pnl
}

func (pnl Panel) buildBoard() board.Board {

	labels := make([]string, len(pnl.columns))
	for i, col := range pnl.columns {
		labels[i] = col.Label
	}

	ops := make([]string, len(nt.FilterOps))
	for i, op := range nt.FilterOps {
		ops[i] = string(op)
	}

	var ranks [][]board.Piece
	for _, ent := range pnl.entries {
		flt := ent.filter
		col, _ := pnl.columnByField(flt.Field)

		ranks = append(ranks, []board.Piece{
			piece.NewCheckbox(ent.enabled, ""),
			piece.NewChoice(labels, col.Label),
			piece.NewChoice(ops, string(flt.Op)),
			piece.NewTextInput(formatValue(flt.Value), 0, 20),
			piece.NewButton(pressDelete, "x"),
		})
	}

	ranks = append(ranks, []board.Piece{
		piece.NewButton(pressAdd, "+ add"),
		piece.NewButton(pressApply, "apply"),
		piece.NewButton(pressClear, "clear"),
		piece.NewButton(pressCancel, "cancel"),
	})

	return board.New(ranks)
}

func (pnl Panel) raw() (filters []nt.Filter) {
	for _, ent := range pnl.entries {
		filters = append(filters, ent.filter)
	}
	return
}

func (pnl Panel) columnByLabel(label string) (nt.Column, bool) {
	idx := slices.IndexFunc(pnl.columns, func(col nt.Column) bool { return col.Label == label })
	if idx < 0 {
		return nt.Column{}, false
	}
	return pnl.columns[idx], true
}

func (pnl Panel) columnByField(field string) (nt.Column, bool) {
	idx := slices.IndexFunc(pnl.columns, func(col nt.Column) bool { return col.Field == field })
	if idx < 0 {
		return nt.Column{}, false
	}
	return pnl.columns[idx], true
}

func (pnl Panel) help() string {

	rank, file := pnl.board.Position()
	if rank >= len(pnl.entries) {
		return "tab: next  enter: press  ctrl+s: apply  esc: cancel"
	}

	switch file {
	case fileEnabled:
		return "space: toggle  tab: next  ctrl+s: apply  esc: cancel"
	case fileField, fileOp:
		return "←→: change  tab: next  ctrl+s: apply  esc: cancel"
	case fileDelete:
		return "enter: delete  tab: next  ctrl+s: apply  esc: cancel"
	}
	return "type to edit  tab: next  ctrl+s: apply  esc: cancel"
}

// parseValue types the text of a value input after its column.
func parseValue(col nt.Column, text string) any {

	switch col.Kind {
	case nt.Bool:
		if on, err := strconv.ParseBool(text); err == nil {
			return on
		}
	case nt.Number:
		if num, err := strconv.Atoi(text); err == nil {
			return num
		}
	}
	return text
}

func formatValue(val any) string {
	if val == nil {
		return ""
	}
	return fmt.Sprintf("%v", val)
}
