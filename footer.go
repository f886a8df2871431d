package zupos

import (
	"strings"

	"charm.land/lipgloss/v2"

	"zupos/style"
)

var help = map[Screen]string{
	GridScreen:    "/ search  f filters  c clear  i new  v view  e edit  d delete  s sort  n/p page  +/- size  x dismiss  q quit",
	SearchScreen:  "type to search  enter done  esc clear",
	FilterScreen:  "tab next  ←→ change  enter press  ctrl+s apply  esc cancel",
	DrawerScreen:  "tab next  ctrl+s save  ctrl+r reset  esc close",
	ConfirmScreen: "y delete  n keep",
	DetailScreen:  "↑↓ scroll  esc close",
}

// RenderFooter renders the search line and key help for screen.
func RenderFooter(screen Screen, search, source string, width int) string {

	left := "search: " + search
	if screen == SearchScreen {
		left += "▏"
	}
	right := source

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	top := left + strings.Repeat(" ", padding) + style.MutedStyle.Render(right)

	return top + "\n" + style.MutedStyle.Render(help[screen])
}
