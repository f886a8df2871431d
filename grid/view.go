package grid

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"

	nt "zupos/entity"
	"zupos/pagination"
	"zupos/style"
)

const skeleton = "░░░░░░"

// Render draws the current page in the selected mode, followed by the
// paging footer.
func (m Model[R]) Render() string {

	var body string
	switch {
	case m.loading && m.mode == Mobile:
		body = m.renderSkeletonCards()
	case m.loading:
		body = m.renderSkeletonTable()
	default:
		result := m.Result()
		switch {
		case len(result.Visible) == 0:
			body = m.renderEmpty()
		case m.mode == Mobile:
			body = m.renderCards(result.Visible)
		default:
			body = m.renderTable(result.Visible)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

// Cell returns the display text of col for row: the column's renderer if any,
// a status badge for bools, the placeholder for missing values.
func (m Model[R]) Cell(row R, col Column[R]) string {

	val := nt.Value{Raw: row.Value(col.Field)}
	if col.Renderer != nil {
		return col.Renderer.Render(val, row, col.Column)
	}
	if on, err := val.Bool(); err == nil {
		return m.cfg.Status.Status(on)
	}
	return val.Display()
}

// Buttons renders the actions offered for row.
// Hidden actions contribute nothing, disabled ones render muted.
func (m Model[R]) Buttons(row R) (buttons []string) {

	for _, act := range m.actions {
		if act.Hidden(row) {
			continue
		}

		label := fmt.Sprintf("[%s] %s", act.Key(), act.Label())
		switch {
		case act.Disabled(row):
			label = style.DisabledStyle.Render(label)
		default:
			stl := style.ActionStyle
			if styled, ok := act.(Styled); ok {
				stl = styled.Style()
			}
			label = stl.Render(label)
		}
		buttons = append(buttons, label)
	}
	return
}

// unexported

func (m Model[R]) renderTable(visible []R) string {

	offset := 0
	if m.cfg.Selectable {
		offset = 1
	}

	tbl := table.New()
	style.StyleTable(tbl)
	tbl.Headers(m.headers(visible)...)

	for _, row := range visible {
		var cells []string
		if m.cfg.Selectable {
			cells = append(cells, selectBox(m.selection.Has(row.Key())))
		}
		for _, col := range m.columns {
			cells = append(cells, truncate(m.Cell(row, col), col.Width))
		}
		if len(m.actions) > 0 {
			cells = append(cells, strings.Join(m.Buttons(row), " "))
		}
		tbl.Row(cells...)
	}

	styler := style.CellStyler(m.cursor, m.colCursor+offset)
	tbl.StyleFunc(func(row, col int) lipgloss.Style {
		stl := styler(row, col).Padding(0, 1)
		if idx := col - offset; idx >= 0 && idx < len(m.columns) {
			stl = stl.Align(position(m.columns[idx].Align))
		}
		return stl
	})

	return tbl.String()
}

func (m Model[R]) headers(visible []R) (headers []string) {

	if m.cfg.Selectable {
		headers = append(headers, Header(m.selection, visible).Box())
	}

	for _, col := range m.columns {
		label := col.Label
		if m.sort.Field == col.Field && col.Sortable {
			label += sortArrow(m.sort)
		}
		headers = append(headers, fmt.Sprintf("%-*s", col.Width, label))
	}

	if len(m.actions) > 0 {
		headers = append(headers, "")
	}
	return
}

func (m Model[R]) renderSkeletonTable() string {

	tbl := table.New()
	style.StyleTable(tbl)

	var headers []string
	for _, col := range m.columns {
		headers = append(headers, col.Label)
	}
	tbl.Headers(headers...)

	for range m.cfg.SkeletonRows {
		cells := make([]string, len(m.columns))
		for i := range cells {
			cells[i] = style.SkeletonStyle.Render(skeleton)
		}
		tbl.Row(cells...)
	}

	return tbl.String()
}

func (m Model[R]) renderCards(visible []R) string {

	var cards []string
	for i, row := range visible {
		cell := func(col nt.Column) string {
			for _, gc := range m.columns {
				if gc.Id == col.Id {
					return m.Cell(row, gc)
				}
			}
			return nt.Placeholder
		}

		expanded := m.expansion[row.Key()]
		crd := m.cfg.Card.Build(m.Columns(), expanded, cell, m.Buttons(row))
		cards = append(cards, crd.Render(m.width, i == m.cursor))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model[R]) renderSkeletonCards() string {

	var cards []string
	for range m.cfg.SkeletonRows {
		cards = append(cards, style.CardStyle.Render(style.SkeletonStyle.Render(skeleton+skeleton)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model[R]) renderEmpty() string {

	lines := []string{}
	if m.cfg.Empty.Icon != "" {
		lines = append(lines, m.cfg.Empty.Icon)
	}
	lines = append(lines, style.TitleStyle.Render(m.cfg.Empty.Message))
	if m.cfg.Empty.Description != "" {
		lines = append(lines, style.MutedStyle.Render(m.cfg.Empty.Description))
	}

	return style.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderFooter shows the row window, page and size over the filtered rows.
func (m Model[R]) renderFooter() string {

	filtered := m.Result().Filtered
	pgr := pagination.Config{Page: m.page, PageSize: m.size}.New(filtered, nil)

	left := fmt.Sprintf("%d–%d of %d", min(pgr.StartIndex(), filtered), pgr.EndIndex(), filtered)
	right := fmt.Sprintf("page %d/%d · %d per page", pgr.Page()+1, max(1, pgr.TotalPages()), pgr.PageSize())
	if len(m.selection) > 0 {
		right = fmt.Sprintf("%d selected · %s", len(m.selection), right)
	}

	padding := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}

// help

func sortArrow(st nt.Sort) string {
	if st.Desc {
		return " ▼"
	}
	return " ▲"
}

func selectBox(on bool) string {
	if on {
		return Checked.Box()
	}
	return Unchecked.Box()
}

func position(align nt.Align) lipgloss.Position {
	switch align {
	case nt.Center:
		return lipgloss.Center
	case nt.Right:
		return lipgloss.Right
	}
	return lipgloss.Left
}

func truncate(in string, width int) string {

	if width <= 0 || lipgloss.Width(in) <= width {
		return in
	}
	return ansi.Truncate(in, width-1, "") + style.MutedStyle.Render("…")
}
