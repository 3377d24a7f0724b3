package nodeid

import (
	"github.com/specialistvlad/schematic/internal/category"
)

// Ref is the structured form of a fully-qualified component reference.
type Ref struct {
	Category category.Category
	Name     string
}

// New returns the reference for name within c.
func New(c category.Category, name string) Ref {
	return Ref{Category: c, Name: name}
}

// String serializes the Ref into its canonical `category.name` form, which
// doubles as the resolved value cache key.
func (r Ref) String() string {
	if r.Category == "" && r.Name == "" {
		return ""
	}
	return string(r.Category) + Separator + r.Name
}

// IsZero reports whether the reference is empty.
func (r Ref) IsZero() bool {
	return r.Category == "" && r.Name == ""
}

// Strings renders a list of references in order.
func Strings(refs []Ref) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.String()
	}
	return out
}
