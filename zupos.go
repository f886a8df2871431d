// Package zupos is the Store Definition screen of the back office: a grid of
// store definitions with quick search, advanced filters, a drawer form for
// create and edit, and toasts reporting the outcome.
package zupos

import (
	"context"

	"charm.land/lipgloss/v2"

	nt "zupos/entity"
	"zupos/toast"
)

// Store specifies the backing datastore for store definitions.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// List returns every store definition
	List(ctx context.Context) (stores []nt.StoreDef, err error)
	// Get returns one store definition
	Get(ctx context.Context, id int) (sd nt.StoreDef, err error)
	// Save inserts a zero id store under the next id, otherwise updates
	Save(ctx context.Context, sd nt.StoreDef) (saved nt.StoreDef, err error)
	// Delete removes a store definition
	Delete(ctx context.Context, id int) (err error)
}

// Notifier is the toast service the screen reports outcomes to.
type Notifier interface {
	Success(message string, opts ...toast.Option) string
	Error(message string, opts ...toast.Option) string
	Info(message string, opts ...toast.Option) string
	DismissLatest()
	Layer(width, height int) *lipgloss.Layer
}
