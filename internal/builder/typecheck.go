package builder

import (
	"reflect"

	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/nodeid"
)

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// checkOutput verifies that value can be used where expected is required.
func checkOutput(ref nodeid.Ref, value any, expected reflect.Type) error {
	if value == nil {
		if nilable(expected) {
			return nil
		}
		return schemaerr.NewWithContext(schemaerr.ErrCodeTypeMismatch,
			"component `"+ref.String()+"`: expected "+expected.String()+", got nil",
			map[string]any{"expected": expected.String(), "actual": "nil"})
	}
	actual := reflect.TypeOf(value)
	if actual.AssignableTo(expected) {
		return nil
	}
	return schemaerr.NewWithContext(schemaerr.ErrCodeTypeMismatch,
		"component `"+ref.String()+"`: expected "+expected.String()+", got "+actual.String(),
		map[string]any{"expected": expected.String(), "actual": actual.String()})
}
