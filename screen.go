package zupos

// Screen indicates which screen has the keyboard
type Screen int

const (
	GridScreen Screen = iota
	SearchScreen
	FilterScreen
	DrawerScreen
	ConfirmScreen
	DetailScreen
)
