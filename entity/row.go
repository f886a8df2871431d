package entity

// Row is a record displayed by the grid.
// Key must be unique across the full row collection and stable across reloads.
type Row interface {
	Key() string
	Value(field string) any
}
