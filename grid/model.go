// Package grid shows rows as a filtered, sorted and paged table or card list.
//
// The grid reads rows, filters, sort, paging and selection from its owner and
// answers input with proposal messages; it only keeps cursor and card
// expansion state of its own.
package grid

import (
	tea "charm.land/bubbletea/v2"

	"zupos/card"
	nt "zupos/entity"
	"zupos/style"
)

// Mode selects the presentation strategy.
type Mode int

const (
	Desktop Mode = iota
	Mobile
)

// ModeFor picks Mobile below the breakpoint width, Desktop otherwise.
func ModeFor(width, breakpoint int) Mode {
	if width < breakpoint {
		return Mobile
	}
	return Desktop
}

// Empty is shown when no rows survive filtering.
type Empty struct {
	Message     string `yaml:"message"`
	Description string `yaml:"description,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
}

// Config holds presentation settings fixed for the life of a grid.
type Config struct {
	Empty        Empty              `yaml:"empty"`
	SkeletonRows int                `yaml:"skeletonRows"`
	Selectable   bool               `yaml:"selectable"`
	Card         card.Config        `yaml:"card"`
	Status       style.StatusLabels `yaml:"status"`
}

// Model is a bubbletea component over rows of type R.
type Model[R nt.Row] struct {
	cfg     Config
	columns []Column[R]
	actions []Action[R]

	// owned by the caller
	rows        []R
	filters     []nt.Filter
	sort        nt.Sort
	page        int
	size        int
	sizeOptions []int
	selection   Selection
	loading     bool
	mode        Mode

	// local
	cursor    int // row within visible page
	colCursor int // column for header sorting
	expansion card.Expansion
	width     int
	height    int
}

// New creates a grid with columns and actions.
func New[R nt.Row](cfg Config, columns []Column[R], actions []Action[R]) Model[R] {

	if cfg.SkeletonRows <= 0 {
		cfg.SkeletonRows = 5
	}
	if cfg.Status == (style.StatusLabels{}) {
		cfg.Status = style.DefaultStatusLabels
	}
	if cfg.Empty.Message == "" {
		cfg.Empty.Message = "No records"
	}

	return Model[R]{
		cfg:       cfg,
		columns:   columns,
		actions:   actions,
		expansion: card.Expansion{},
	}
}

// SetRows replaces the full row collection.
func (m Model[R]) SetRows(rows []R) Model[R] {
	m.rows = rows
	return m.fit()
}

// SetFilters replaces the active filters.
func (m Model[R]) SetFilters(filters []nt.Filter) Model[R] {
	m.filters = filters
	return m.fit()
}

// SetSort replaces the active sort.
func (m Model[R]) SetSort(st nt.Sort) Model[R] {
	m.sort = st
	return m.fit()
}

// SetPage sets the page window and the selectable sizes.
func (m Model[R]) SetPage(page, size int, options []int) Model[R] {
	m.page = page
	m.size = size
	m.sizeOptions = options
	return m.fit()
}

// SetSelection replaces the selected keys.
func (m Model[R]) SetSelection(sel Selection) Model[R] {
	m.selection = sel
	return m
}

// SetLoading toggles skeleton rows.
func (m Model[R]) SetLoading(loading bool) Model[R] {
	m.loading = loading
	return m
}

// SetMode picks the presentation strategy.
func (m Model[R]) SetMode(mode Mode) Model[R] {
	m.mode = mode
	return m
}

// Filters returns the active filters.
func (m Model[R]) Filters() []nt.Filter { return m.filters }

// Sort returns the active sort.
func (m Model[R]) Sort() nt.Sort { return m.sort }

// Selection returns the selected keys.
func (m Model[R]) Selection() Selection { return m.selection }

// Mode returns the presentation strategy.
func (m Model[R]) Mode() Mode { return m.mode }

// Columns returns the column definitions.
func (m Model[R]) Columns() []nt.Column { return defs(m.columns) }

// Result runs the pipeline over the current inputs.
func (m Model[R]) Result() Result[R] {
	return Compute(m.rows, m.filters, m.sort, m.page, m.size)
}

// Focused returns the row under the cursor.
func (m Model[R]) Focused() (row R, ok bool) {

	visible := m.Result().Visible
	if m.cursor < 0 || m.cursor >= len(visible) {
		return
	}
	return visible[m.cursor], true
}

// Expanded reports whether the card for key is open.
func (m Model[R]) Expanded(key string) bool {
	return m.expansion[key]
}

func (m Model[R]) Init() tea.Cmd {
	return nil
}

func (m Model[R]) Update(msg tea.Msg) (Model[R], tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyPressMsg:
		if m.loading {
			return m, nil
		}
		return m.handleKey(msg.String())
	}

	return m, nil
}

// unexported

func (m Model[R]) handleKey(key string) (Model[R], tea.Cmd) {

	result := m.Result()

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(result.Visible)-1 {
			m.cursor++
		}

	case "left", "h":
		if m.colCursor > 0 {
			m.colCursor--
		}

	case "right", "l":
		if m.colCursor < len(m.columns)-1 {
			m.colCursor++
		}

	case "s":
		if m.colCursor >= len(m.columns) || !m.columns[m.colCursor].Sortable {
			return m, nil
		}
		next := NextSort(m.sort, m.columns[m.colCursor].Field)
		return m, func() tea.Msg { return SortMsg{Sort: next} }

	case "pgdown", "n":
		return m, pageCmd(m.page + 1)

	case "pgup", "p":
		return m, pageCmd(m.page - 1)

	case "home", "g":
		return m, pageCmd(0)

	case "end", "G":
		if m.size > 0 {
			return m, pageCmd((result.Filtered+m.size-1)/m.size - 1)
		}

	case "+", "-":
		return m, m.sizeCmd(key == "+")

	case "space", " ":
		row, ok := m.Focused()
		if !m.cfg.Selectable || !ok {
			return m, nil
		}
		sel := m.selection.Toggle(row.Key())
		return m, func() tea.Msg { return SelectionMsg{Keys: sel} }

	case "a":
		if !m.cfg.Selectable {
			return m, nil
		}
		sel := SelectAll(result.Visible)
		if Header(m.selection, result.Visible) == Checked {
			sel = Selection{}
		}
		return m, func() tea.Msg { return SelectionMsg{Keys: sel} }

	case "enter":
		row, ok := m.Focused()
		if m.mode == Mobile && m.cfg.Card.Expandable && ok {
			m.expansion.Toggle(row.Key())
		}

	default:
		return m, m.actionCmd(key)
	}

	return m, nil
}

func (m Model[R]) actionCmd(key string) tea.Cmd {

	row, ok := m.Focused()
	if !ok {
		return nil
	}

	for _, act := range m.actions {
		if act.Key() != key {
			continue
		}
		if act.Hidden(row) || act.Disabled(row) {
			return nil
		}
		return act.Run(row)
	}
	return nil
}

func (m Model[R]) sizeCmd(up bool) tea.Cmd {

	idx := -1
	for i, opt := range m.sizeOptions {
		if opt == m.size {
			idx = i
		}
	}

	switch {
	case up && idx < len(m.sizeOptions)-1:
		idx++
	case !up && idx > 0:
		idx--
	default:
		return nil
	}

	size := m.sizeOptions[idx]
	return func() tea.Msg { return PageSizeMsg{Size: size} }
}

// fit keeps the cursor on a visible row after inputs change.
func (m Model[R]) fit() Model[R] {

	visible := len(m.Result().Visible)
	if m.cursor >= visible {
		m.cursor = max(0, visible-1)
	}
	return m
}

func pageCmd(page int) tea.Cmd {
	return func() tea.Msg { return PageMsg{Page: page} }
}
