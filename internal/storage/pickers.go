package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/fsutil"
)

// Record is one dataset sample description, such as a file path and label.
type Record = map[string]any

// Picker lists the records of a dataset. params is the params bag of the
// component asking for the dataset.
type Picker func(params map[string]any) ([]Record, error)

// Pickers is the storage of dataset pickers.
type Pickers = Storage[Picker]

// Services is the storage of shared, already constructed services.
type Services = Storage[any]

// NewPickers creates a picker storage with the built-in "inline" and
// "files" pickers.
func NewPickers(logger *slog.Logger) *Pickers {
	p := New[Picker]("dataset picker", logger)
	p.MustRegister("inline", InlinePicker)
	p.MustRegister("files", FilesPicker)
	return p
}

// NewServices creates an empty service storage.
func NewServices(logger *slog.Logger) *Services {
	return New[any]("service", logger)
}

// Lookup returns the service registered under name as a T.
func Lookup[T any](s *Services, name string) (T, error) {
	var zero T
	v, err := s.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, schemaerr.NewWithContext(schemaerr.ErrCodeTypeMismatch,
			fmt.Sprintf("service `%s`: stored %T is not %T", name, v, zero),
			map[string]any{"actual": fmt.Sprintf("%T", v)})
	}
	return typed, nil
}

// InlinePicker returns params["records"], a list of objects written
// straight into the manifest.
func InlinePicker(params map[string]any) ([]Record, error) {
	raw, ok := params["records"]
	if !ok {
		return nil, fmt.Errorf("inline picker: missing `records`")
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("inline picker: `records` must be a list, got %T", raw)
	}
	out := make([]Record, 0, len(list))
	for i, item := range list {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("inline picker: record %d must be an object, got %T", i, item)
		}
		out = append(out, rec)
	}
	return out, nil
}

// FilesPicker lists files under params["root"] whose names end with one of
// params["extensions"]. Each record holds the path and, when the file sits
// in a sub-directory of root, that directory's name as "label".
func FilesPicker(params map[string]any) ([]Record, error) {
	root, ok := params["root"].(string)
	if !ok || root == "" {
		return nil, fmt.Errorf("files picker: `root` must be a non-empty string")
	}
	var exts []string
	switch v := params["extensions"].(type) {
	case string:
		exts = []string{v}
	case []any:
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("files picker: extensions must be strings, got %T", e)
			}
			exts = append(exts, s)
		}
	case []string:
		exts = v
	case nil:
	default:
		return nil, fmt.Errorf("files picker: unsupported `extensions` value %T", v)
	}
	if len(exts) == 0 {
		return nil, fmt.Errorf("files picker: at least one extension is required")
	}

	files, err := fsutil.FindFiles(root, exts...)
	if err != nil {
		return nil, fmt.Errorf("files picker: %w", err)
	}
	sort.Strings(files)

	out := make([]Record, 0, len(files))
	for _, f := range files {
		rec := Record{"path": f}
		if rel, err := filepath.Rel(root, filepath.Dir(f)); err == nil && rel != "." {
			rec["label"] = filepath.ToSlash(rel)
		}
		out = append(out, rec)
	}
	return out, nil
}
