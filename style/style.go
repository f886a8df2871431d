package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	BackgroundColor  = lipgloss.Color("234")                                 // Dark warm grey
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	HlCellStyle      = lipgloss.NewStyle().Background(lipgloss.Color("237")) // Slightly warmer cell
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	TitleStyle       = lipgloss.NewStyle().Bold(true)
	UnStyle          = lipgloss.NewStyle()

	SkeletonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	DisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	ActionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	InputStyle    = lipgloss.NewStyle().Underline(true)

	ActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("71")).Padding(0, 1)
	InactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("167")).Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	FocusedCardStyle = CardStyle.BorderForeground(lipgloss.Color("63"))

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

// StatusLabels names the two states of a boolean column.
type StatusLabels struct {
	True  string `yaml:"active"`
	False string `yaml:"inactive"`
}

// DefaultStatusLabels are used when none are configured.
var DefaultStatusLabels = StatusLabels{True: "Active", False: "Inactive"}

// Status renders a boolean as a two-state badge.
func (sl StatusLabels) Status(on bool) string {
	if on {
		return ActiveStyle.Render(sl.True)
	}
	return InactiveStyle.Render(sl.False)
}

// RowStyler returns a StyleFunc that highlights the selected row
func RowStyler(selectedRow int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		if row == selectedRow {
			return HlRowStyle
		}
		return UnStyle
	}
}

// CellStyler returns a StyleFunc that highlights the selected row, and the
// header cell of the selected column.
func CellStyler(selectedRow, selectedCol int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow && col == selectedCol:
			return HlCellStyle.Bold(true)
		case row == table.HeaderRow:
			return TitleStyle
		case row == selectedRow:
			return HlRowStyle
		}
		return UnStyle
	}
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).    // Disable top border
		BorderBottom(false). // Disable bottom border
		BorderLeft(false).   // Disable left border
		BorderRight(false).  // Disable right border
		BorderColumn(false). // Disable column separators
		BorderStyle(TableBorderStyle)
}
