package piece

import (
	"unicode"

	tea "charm.land/bubbletea/v2"

	"zupos/board"
	"zupos/style"
)

// TextInput is an editable text field
type TextInput struct {
	value     []rune
	cursor    int
	maxLength int
	width     int
}

func NewTextInput(value string, maxLength, width int) TextInput {
	if maxLength <= 0 {
		maxLength = 100
	}
	runes := []rune(value)
	return TextInput{
		value:     runes,
		cursor:    len(runes),
		maxLength: maxLength,
		width:     width,
	}
}

func (t TextInput) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	if kp, ok := msg.(tea.KeyPressMsg); ok {
		return t.press(kp.String(), kp.Text)
	}
	return t, nil
}

func (t TextInput) Value() string {
	return string(t.value)
}

func (t TextInput) Cursor() int {
	return t.cursor
}

func (t TextInput) Focusable() bool {
	return true
}

func (t TextInput) Render() string {
	text := string(t.value)
	if t.width > 0 {
		return style.InputStyle.Width(t.width).Render(text)
	}
	return style.InputStyle.Render(text)
}

func (t TextInput) press(key, text string) (board.Piece, tea.Cmd) {

	old := string(t.value)

	switch key {
	case "backspace":
		if t.cursor > 0 {
			t.value = append(t.value[:t.cursor-1:t.cursor-1], t.value[t.cursor:]...)
			t.cursor--
		}
	case "delete":
		if t.cursor < len(t.value) {
			t.value = append(t.value[:t.cursor:t.cursor], t.value[t.cursor+1:]...)
		}
	case "left":
		if t.cursor > 0 {
			t.cursor--
		}
	case "right":
		if t.cursor < len(t.value) {
			t.cursor++
		}
	case "home", "ctrl+a":
		t.cursor = 0
	case "end", "ctrl+e":
		t.cursor = len(t.value)
	case "space":
		t = t.insert(" ")
	default:
		t = t.insert(text)
	}

	if string(t.value) == old {
		return t, nil
	}
	return t, func() tea.Msg {
		return &ValueChangedMsg{Value: string(t.value)}
	}
}

func (t TextInput) insert(text string) TextInput {

	runes := []rune(text)
	if len(runes) != 1 || !unicode.IsPrint(runes[0]) || len(t.value) >= t.maxLength {
		return t
	}

	value := make([]rune, 0, len(t.value)+1)
	value = append(value, t.value[:t.cursor]...)
	value = append(value, runes[0])
	value = append(value, t.value[t.cursor:]...)

	t.value = value
	t.cursor++
	return t
}
