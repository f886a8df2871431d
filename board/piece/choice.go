package piece

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"zupos/board"
)

// Choice cycles through a fixed list of options
type Choice struct {
	options  []string
	selected int
}

// NewChoice selects current, or the first option when current is not offered.
func NewChoice(options []string, current string) Choice {
	return Choice{
		options:  options,
		selected: max(0, slices.Index(options, current)),
	}
}

func (c Choice) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	if kp, ok := msg.(tea.KeyPressMsg); ok {
		return c.press(kp.String())
	}
	return c, nil
}

func (c Choice) Selected() string {
	if c.selected < 0 || c.selected >= len(c.options) {
		return ""
	}
	return c.options[c.selected]
}

func (c Choice) Focusable() bool {
	return len(c.options) > 0
}

func (c Choice) Render() string {
	if c.selected < 0 || c.selected >= len(c.options) {
		return "?"
	}
	return "‹ " + c.options[c.selected] + " ›"
}

func (c Choice) Value() string {
	return c.Selected()
}

func (c Choice) press(key string) (board.Piece, tea.Cmd) {

	if len(c.options) == 0 {
		return c, nil
	}

	switch key {
	case "left", "h":
		c.selected = (c.selected - 1 + len(c.options)) % len(c.options)
	case "right", "l", "space", " ":
		c.selected = (c.selected + 1) % len(c.options)
	default:
		return c, nil
	}

	return c, func() tea.Msg {
		return &ChoiceMsg{
			Selected: c.Selected(),
			Index:    c.selected,
		}
	}
}
