package nodeid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/specialistvlad/schematic/internal/category"
)

// Separator joins the category and the name of a reference.
const Separator = "."

// nameRegex is the grammar of a component or strategy name.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// isValidName rejects names that match the grammar but read as operators.
func isValidName(name string) bool {
	if name == "-" || name == "_" {
		return false
	}
	return nameRegex.MatchString(name)
}

// ValidateName checks that name can appear on the right of a reference.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !isValidName(name) {
		return fmt.Errorf("invalid name %q: must match %s", name, nameRegex.String())
	}
	return nil
}

// Parse splits a raw `category.name` reference. It checks syntax only;
// whether the category is known is up to the registry resolving it.
func Parse(raw string) (Ref, error) {
	if raw == "" {
		return Ref{}, fmt.Errorf("reference cannot be empty")
	}

	parts := strings.Split(raw, Separator)
	if len(parts) != 2 {
		return Ref{}, fmt.Errorf("reference %q: expected 2 parts separated by %q but got %d", raw, Separator, len(parts))
	}

	c := category.Category(parts[0])
	if err := c.Validate(); err != nil {
		return Ref{}, fmt.Errorf("reference %q: %w", raw, err)
	}
	if err := ValidateName(parts[1]); err != nil {
		return Ref{}, fmt.Errorf("reference %q: %w", raw, err)
	}

	return Ref{Category: c, Name: parts[1]}, nil
}

// MustParse is Parse for literals in code; it panics on malformed input.
func MustParse(raw string) Ref {
	r, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return r
}
