package zupos

import nt "zupos/entity"

// rowsMsg contains the full list of stores
type rowsMsg struct {
	stores []nt.StoreDef
}

// savedMsg reports a drawer save
type savedMsg struct {
	store   nt.StoreDef
	created bool
	err     error
}

// deletedMsg reports a delete
type deletedMsg struct {
	store nt.StoreDef
	err   error
}

// viewMsg asks to show a store in full
type viewMsg struct {
	store nt.StoreDef
}

// editMsg asks to open the drawer on a store
type editMsg struct {
	store nt.StoreDef
}

// deleteMsg asks to confirm deleting a store
type deleteMsg struct {
	store nt.StoreDef
}
