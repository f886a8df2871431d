package entity

// Kind is the value type a column holds.
type Kind string

const (
	Text   Kind = "text"
	Bool   Kind = "bool"
	Number Kind = "number"
	// Enum is text drawn from a fixed set, filterable but not free text.
	Enum Kind = "enum"
)

// Align is horizontal alignment of a column's cells.
type Align string

const (
	Left   Align = "left"
	Center Align = "center"
	Right  Align = "right"
)

// Column describes a projection of a row onto the grid.
// Id is unique within a column set, Field need not be.
type Column struct {
	Id           string `yaml:"id"`
	Label        string `yaml:"label"`
	Field        string `yaml:"field"`
	Kind         Kind   `yaml:"kind,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	Align        Align  `yaml:"align,omitempty"`
	Sortable     bool   `yaml:"sortable,omitempty"`
	Filterable   bool   `yaml:"filterable,omitempty"`
	Priority     int    `yaml:"priority,omitempty"` // lower is more important, 0 is unset
	HideOnMobile bool   `yaml:"hideOnMobile,omitempty"`
}

// IsText reports whether the column holds free text.
func (col Column) IsText() bool {
	return col.Kind == "" || col.Kind == Text
}
