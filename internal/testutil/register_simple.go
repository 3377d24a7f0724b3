package testutil

import (
	"reflect"
	"sync"

	"github.com/specialistvlad/schematic/internal/category"
	"github.com/specialistvlad/schematic/internal/registry"
)

// SimpleModule registers a single strategy in one category.
type SimpleModule struct {
	Category   category.Category
	Name       string
	OutputType reflect.Type
	Body       registry.Body
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) error {
	return r.RegisterStrategy(m.Name, m.Category, m.OutputType, m.Body)
}

// RecordingModule registers a "record" strategy in every category. Each
// invocation appends params["id"] to Calls and returns it.
type RecordingModule struct {
	mu    sync.Mutex
	calls []string
}

// Register implements the registry.Module interface.
func (m *RecordingModule) Register(r *registry.Registry) error {
	return r.RegisterStrategyInAll("record", registry.TypeOf[string](),
		registry.Func(func(deps []any, params map[string]any) (string, error) {
			id, _ := params["id"].(string)
			m.mu.Lock()
			m.calls = append(m.calls, id)
			m.mu.Unlock()
			return id, nil
		}))
}

// Calls returns the recorded ids in invocation order.
func (m *RecordingModule) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
