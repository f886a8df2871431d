package filter

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zupos/board/piece"
	nt "zupos/entity"
)

var panelCols = []nt.Column{
	{Id: "id", Label: "ID", Field: "id", Kind: nt.Number, Filterable: true},
	{Id: "name", Label: "Name", Field: "name", Filterable: true},
	{Id: "status", Label: "Status", Field: "status", Kind: nt.Bool, Filterable: true},
	{Id: "gsm", Label: "GSM", Field: "gsm"},
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()

	require.NotNil(t, cmd)
	return cmd()
}

func TestPanelOpenAndApply(t *testing.T) {

	filters := []nt.Filter{
		{Field: "name", Op: nt.Contains, Value: "depo"},
		{Field: "status", Op: nt.Equals, Value: true},
	}
	pnl := NewPanel(panelCols).Open(filters)

	assert.Equal(t, filters, pnl.Filters())

	pnl, cmd := pnl.Update(&piece.PressedMsg{Id: pressApply})
	assert.Equal(t, ApplyMsg{Filters: filters}, run(t, cmd))

	_, cmd = pnl.Update(&piece.PressedMsg{Id: pressCancel})
	assert.Equal(t, CloseMsg{}, run(t, cmd))
}

func TestPanelAddDelete(t *testing.T) {

	pnl := NewPanel(panelCols)
	assert.Empty(t, pnl.Filters())

	pnl, _ = pnl.Update(&piece.PressedMsg{Id: pressAdd})
	assert.Equal(t, []nt.Filter{{Field: "id", Op: nt.Contains, Value: ""}}, pnl.Filters())

	rank, file := pnl.board.Position()
	assert.Equal(t, 0, rank)
	assert.Equal(t, fileValue, file)

	pnl, _ = pnl.Update(&piece.PressedMsg{Id: pressAdd})
	assert.Len(t, pnl.Filters(), 2)

	pnl, _ = pnl.Update(&piece.PressedMsg{Id: pressDelete, Rank: 0})
	assert.Len(t, pnl.Filters(), 1)

	pnl, _ = pnl.Update(&piece.PressedMsg{Id: pressClear})
	assert.Empty(t, pnl.Filters())
}

func TestPanelSync(t *testing.T) {

	pnl := NewPanel(panelCols).Open([]nt.Filter{
		{Field: "name", Op: nt.Contains, Value: "depo"},
		{Field: "id", Op: nt.Equals, Value: 1},
	})

	pnl.board = pnl.board.
		Set(0, fileEnabled, piece.NewCheckbox(false, "")).
		Set(1, fileField, piece.NewChoice([]string{"ID", "Name", "Status"}, "Status")).
		Set(1, fileValue, piece.NewTextInput("false", 0, 0))
	pnl = pnl.sync()

	assert.Equal(t, []nt.Filter{{Field: "status", Op: nt.Equals, Value: false}}, pnl.Filters())
}

func TestPanelOffersFilterableColumns(t *testing.T) {

	pnl := NewPanel(panelCols)
	assert.Len(t, pnl.columns, 3)

	pnl, _ = pnl.Update(SizeMsg{Width: 120, Height: 40})
	assert.NotNil(t, pnl.Layer())
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, true, parseValue(nt.Column{Kind: nt.Bool}, "true"))
	assert.Equal(t, "yes", parseValue(nt.Column{Kind: nt.Bool}, "yes"))
	assert.Equal(t, 42, parseValue(nt.Column{Kind: nt.Number}, "42"))
	assert.Equal(t, "42", parseValue(nt.Column{}, "42"))
}
