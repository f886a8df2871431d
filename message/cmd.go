package message

import tea "charm.land/bubbletea/v2"

// ErrorCmd returns a command reporting err during action
func ErrorCmd(err error, action string) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{
			Err:    err,
			Action: action,
		}
	}
}
