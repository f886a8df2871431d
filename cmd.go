package zupos

import (
	tea "charm.land/bubbletea/v2"

	"zupos/drawer"
	nt "zupos/entity"
	"zupos/message"
)

// loadCmd gets all stores from the store
func (m Model) loadCmd() tea.Cmd {

	return func() tea.Msg {

		stores, err := m.store.List(m.ctx)
		if err != nil {
			return message.ErrorMsg{Err: err, Action: "load stores"}
		}

		return rowsMsg{stores: stores}
	}
}

// saveCmd saves drawer values onto the store being edited, or a new one
func (m Model) saveCmd(submit drawer.SubmitMsg) tea.Cmd {

	sd := nt.StoreDef{}
	if submit.Mode == drawer.Edit {
		sd = m.editing
	}
	sd = applyValues(sd, submit.Values)

	return func() tea.Msg {

		saved, err := m.store.Save(m.ctx, sd)
		return savedMsg{
			store:   saved,
			created: submit.Mode == drawer.Create,
			err:     err,
		}
	}
}

// deleteCmd removes a store
func (m Model) deleteCmd(sd nt.StoreDef) tea.Cmd {

	return func() tea.Msg {

		err := m.store.Delete(m.ctx, sd.Id)
		return deletedMsg{store: sd, err: err}
	}
}
