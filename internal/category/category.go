package category

import (
	"fmt"
	"regexp"
	"strings"
)

// Category is the tag that partitions the component namespace. Two
// categories are equal iff their identifiers match.
type Category string

const (
	Module    Category = "module"
	Model     Category = "model"
	Dataset   Category = "dataset"
	Optimizer Category = "optimizer"
	Trainer   Category = "trainer"
	LossFn    Category = "lossfn"
	Scheduler Category = "scheduler"
	Metric    Category = "metric"
	Loop      Category = "loop"
	Regime    Category = "regime"
	Transform Category = "transform"
	Utility   Category = "utility"

	// None is the uncategorized placeholder. It always exists in a registry
	// and never stores declarations or strategies.
	None Category = "none"
)

// wellKnown lists the built-in categories in their canonical order.
var wellKnown = []Category{
	Module, Model, Dataset, Optimizer, Trainer, LossFn,
	Scheduler, Metric, Loop, Regime, Transform, Utility,
}

// identRegex restricts category identifiers so they can never contain the
// reference separator.
var identRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// WellKnown returns a copy of the built-in categories, excluding None.
func WellKnown() []Category {
	out := make([]Category, len(wellKnown))
	copy(out, wellKnown)
	return out
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// Virtual reports whether the category is a non-buildable placeholder.
func (c Category) Virtual() bool {
	return c == None
}

// Validate checks that the identifier is usable as a namespace key.
func (c Category) Validate() error {
	if !identRegex.MatchString(string(c)) {
		return fmt.Errorf("invalid category identifier %q: must match %s", string(c), identRegex.String())
	}
	return nil
}

// IsWellKnown reports whether c is one of the built-in categories.
func (c Category) IsWellKnown() bool {
	for _, k := range wellKnown {
		if k == c {
			return true
		}
	}
	return c == None
}

// Parse recognizes a built-in category from its identifier. Unlike a lenient
// lookup it never falls back to None: an unrecognized value is an error.
func Parse(value string) (Category, error) {
	c := Category(strings.TrimSpace(strings.ToLower(value)))
	if c.IsWellKnown() {
		return c, nil
	}
	return "", fmt.Errorf("no category matches value %q", value)
}

// Set is an ordered collection of distinct categories. It backs the
// closed-but-extensible contract: membership is explicit, never implied.
type Set struct {
	order []Category
	index map[Category]struct{}
}

// NewSet returns a set holding the given categories in order, ignoring
// repeats.
func NewSet(cats ...Category) *Set {
	s := &Set{index: make(map[Category]struct{}, len(cats))}
	for _, c := range cats {
		s.Add(c)
	}
	return s
}

// Add inserts c and reports whether it was new.
func (s *Set) Add(c Category) bool {
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = struct{}{}
	s.order = append(s.order, c)
	return true
}

// Has reports membership.
func (s *Set) Has(c Category) bool {
	_, ok := s.index[c]
	return ok
}

// Lookup resolves an identifier against the set members.
func (s *Set) Lookup(value string) (Category, bool) {
	c := Category(value)
	return c, s.Has(c)
}

// List returns the members in insertion order.
func (s *Set) List() []Category {
	out := make([]Category, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.order)
}
