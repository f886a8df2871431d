package entity

// FilterOp represents a filter operation type.
type FilterOp string

const (
	Contains   FilterOp = "contains"
	Equals     FilterOp = "equals"
	StartsWith FilterOp = "startsWith"
	EndsWith   FilterOp = "endsWith"
	IsEmpty    FilterOp = "isEmpty"
	IsNotEmpty FilterOp = "isNotEmpty"
)

// FilterOps lists operators in the order the filter dialog cycles them.
var FilterOps = []FilterOp{Contains, Equals, StartsWith, EndsWith, IsEmpty, IsNotEmpty}

// Filter is a single predicate on one field.
// A list of filters is combined with AND.
type Filter struct {
	Field string   `yaml:"field"`
	Op    FilterOp `yaml:"op"`
	Value any      `yaml:"value,omitempty"`
}

// Sort represents the single active sort, inactive when Field is empty.
type Sort struct {
	Field string `yaml:"field,omitempty"`
	Desc  bool   `yaml:"desc,omitempty"`
}

// Active reports whether a sort field is set.
func (st Sort) Active() bool {
	return st.Field != ""
}
