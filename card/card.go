// Package card renders one row as a compact card for narrow terminals.
package card

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	nt "zupos/entity"
	"zupos/style"
)

const (
	// MaxSummary is how many columns a non-expandable card shows.
	MaxSummary = 4

	unsetPriority = 999
)

// Config controls card presentation.
type Config struct {
	Expandable bool   `yaml:"expandable"`
	TitleField string `yaml:"titleField,omitempty"`
}

// Field is one labelled line of a card.
type Field struct {
	Label string
	Text  string
}

// Card is a row laid out for a narrow viewport.
type Card struct {
	Title      string
	Fields     []Field
	Actions    []string
	Expandable bool
	Expanded   bool
}

// CellFunc returns the display text of a column for the row being carded.
type CellFunc func(col nt.Column) string

// Summary picks up to MaxSummary columns by ascending priority,
// unset priorities last, skipping columns hidden on mobile.
func Summary(columns []nt.Column) []nt.Column {

	shown := Visible(columns)
	slices.SortStableFunc(shown, func(a, b nt.Column) int {
		return priority(a) - priority(b)
	})

	if len(shown) > MaxSummary {
		shown = shown[:MaxSummary]
	}
	return shown
}

// Visible returns columns not hidden on mobile, in their given order.
func Visible(columns []nt.Column) []nt.Column {

	shown := make([]nt.Column, 0, len(columns))
	for _, col := range columns {
		if !col.HideOnMobile {
			shown = append(shown, col)
		}
	}
	return shown
}

// TitleColumn returns the column whose value titles a collapsed card:
// the one on titleField if given, else the lowest priority, else the first.
func TitleColumn(columns []nt.Column, titleField string) (title nt.Column, ok bool) {

	if len(columns) == 0 {
		return
	}

	if titleField != "" {
		for _, col := range columns {
			if col.Field == titleField {
				return col, true
			}
		}
	}

	title = columns[0]
	for _, col := range columns[1:] {
		if priority(col) < priority(title) {
			title = col
		}
	}
	return title, true
}

// Build lays out a card from columns, cell text and action labels.
// Collapsed expandable cards carry only the title.
func (cfg Config) Build(columns []nt.Column, expanded bool, cell CellFunc, actions []string) Card {

	crd := Card{
		Expandable: cfg.Expandable,
		Expanded:   cfg.Expandable && expanded,
	}

	if !cfg.Expandable {
		for _, col := range Summary(columns) {
			crd.Fields = append(crd.Fields, Field{Label: col.Label, Text: cell(col)})
		}
		crd.Actions = actions
		return crd
	}

	if title, ok := TitleColumn(columns, cfg.TitleField); ok {
		crd.Title = cell(title)
	}
	if crd.Title == "" {
		crd.Title = nt.Placeholder
	}

	if !crd.Expanded {
		return crd
	}

	for _, col := range Visible(columns) {
		crd.Fields = append(crd.Fields, Field{Label: col.Label, Text: cell(col)})
	}
	crd.Actions = actions
	return crd
}

// Render draws the card at width, highlighted when focused.
func (crd Card) Render(width int, focused bool) string {

	var lines []string

	if crd.Expandable {
		chevron := "▸"
		if crd.Expanded {
			chevron = "▾"
		}
		lines = append(lines, style.TitleStyle.Render(chevron+" "+crd.Title))
	}

	labelWidth := 0
	for _, fld := range crd.Fields {
		labelWidth = max(labelWidth, lipgloss.Width(fld.Label))
	}
	for _, fld := range crd.Fields {
		label := style.MutedStyle.Width(labelWidth).Render(fld.Label)
		lines = append(lines, label+"  "+fld.Text)
	}

	if len(crd.Actions) > 0 {
		lines = append(lines, strings.Join(crd.Actions, " "))
	}

	box := style.CardStyle
	if focused {
		box = style.FocusedCardStyle
	}
	if width > 2 {
		box = box.Width(width - 2)
	}
	return box.Render(strings.Join(lines, "\n"))
}

// Expansion tracks which cards are open, keyed by row key.
// Each card toggles independently.
type Expansion map[string]bool

// Toggle flips the card for key between collapsed and expanded.
func (exp Expansion) Toggle(key string) {
	if exp[key] {
		delete(exp, key)
		return
	}
	exp[key] = true
}

// unexported

func priority(col nt.Column) int {
	if col.Priority <= 0 {
		return unsetPriority
	}
	return col.Priority
}
