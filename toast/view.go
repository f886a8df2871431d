package toast

import (
	"charm.land/lipgloss/v2"
)

const width = 40

var kindColor = map[Kind]string{
	Success: "71",
	Error:   "203",
	Warning: "221",
	Info:    "75",
}

// Layer stacks the active toasts at the configured position of a screen
// of width by height, nil when there are none.
func (mgr *Manager) Layer(screenWidth, screenHeight int) *lipgloss.Layer {

	toasts := mgr.Toasts()
	if len(toasts) == 0 {
		return nil
	}

	boxes := make([]string, len(toasts))
	for i, tst := range toasts {
		boxes[i] = Render(tst)
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, boxes...)

	x, y := anchor(mgr.cfg.Position, screenWidth, screenHeight, lipgloss.Width(stack), lipgloss.Height(stack))
	return lipgloss.NewLayer("toast", stack).X(x).Y(y)
}

// Render draws one toast.
func Render(tst Toast) string {

	color := lipgloss.Color(kindColor[tst.Kind])

	head := lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(tst.Kind))
	if tst.Title != "" {
		head = lipgloss.NewStyle().Foreground(color).Bold(true).Render(tst.Title)
	}
	if tst.CloseButton {
		head += "  ×"
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(width).
		Render(head + "\n" + tst.Message)
}

func anchor(pos Position, screenWidth, screenHeight, w, h int) (x, y int) {

	right := max(0, screenWidth-w)
	center := max(0, (screenWidth-w)/2)
	bottom := max(0, screenHeight-h-1)

	switch pos {
	case TopLeft:
		return 0, 0
	case TopCenter:
		return center, 0
	case BottomRight:
		return right, bottom
	case BottomLeft:
		return 0, bottom
	case BottomCenter:
		return center, bottom
	}
	return right, 0
}
