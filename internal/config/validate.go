package config

import (
	"errors"
	"fmt"
	"strings"

	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Validate checks identifiers and references of every component and applies
// param schemas in place. All problems are reported together.
func Validate(m *Manifest) error {
	var issues []error
	for _, c := range m.Categories {
		if err := c.Validate(); err != nil {
			issues = append(issues, schemaerr.Wrap(schemaerr.ErrCodeInvalidArgument, "manifest category", err))
		}
	}
	for _, comp := range m.Components {
		if err := validateComponent(comp); err != nil {
			issues = append(issues, err)
		}
	}
	return errors.Join(issues...)
}

func validateComponent(c *Component) error {
	where := fmt.Sprintf("component `%s`", c.Ref())
	if c.Source != "" {
		where += " (" + c.Source + ")"
	}

	if err := c.Category.Validate(); err != nil {
		return schemaerr.Wrap(schemaerr.ErrCodeInvalidArgument, where, err)
	}
	if err := nodeid.ValidateName(c.Name); err != nil {
		return schemaerr.Wrap(schemaerr.ErrCodeInvalidArgument, where, err)
	}
	for _, dep := range c.DependsOn {
		if _, err := nodeid.Parse(dep); err != nil {
			return schemaerr.Wrap(schemaerr.ErrCodeInvalidReference, where, err)
		}
	}
	if err := ApplySchema(c); err != nil {
		return schemaerr.Wrap(schemaerr.ErrCodeInvalidArgument, where, err)
	}
	return nil
}

// ApplySchema fills defaults and converts params to their declared types.
// A missing param without a default is an error unless it is optional.
// Params the schema does not mention are passed through untouched.
func ApplySchema(c *Component) error {
	if len(c.Schema) == 0 {
		return nil
	}
	if c.Params == nil {
		c.Params = make(map[string]any)
	}

	for name, def := range c.Schema {
		raw, present := c.Params[name]
		if !present {
			switch {
			case def.Default != nil:
				native, err := CtyToNative(*def.Default)
				if err != nil {
					return fmt.Errorf("default of param `%s`: %w", name, err)
				}
				c.Params[name] = native
			case def.Optional:
			default:
				return fmt.Errorf("the required param is missing: %s", name)
			}
			continue
		}

		if raw == nil {
			if def.Optional || def.Default != nil {
				continue
			}
			return fmt.Errorf("wrong type for %s: expected %s, got null", name, def.Type.FriendlyName())
		}

		val, err := NativeToCty(raw)
		if err != nil {
			return fmt.Errorf("param `%s`: %w", name, err)
		}
		converted, err := convert.Convert(val, def.Type)
		if err != nil {
			return fmt.Errorf("wrong type for %s: expected %s: %s", name+pathSuffix(err), def.Type.FriendlyName(), errorDetail(err))
		}
		native, err := CtyToNative(converted)
		if err != nil {
			return fmt.Errorf("param `%s`: %w", name, err)
		}
		c.Params[name] = native
	}
	return nil
}

// pathSuffix renders the location carried by a cty.PathError.
func pathSuffix(err error) string {
	var pe cty.PathError
	if !errors.As(err, &pe) {
		return ""
	}
	var b strings.Builder
	for _, step := range pe.Path {
		switch s := step.(type) {
		case cty.GetAttrStep:
			b.WriteString("." + s.Name)
		case cty.IndexStep:
			if s.Key.Type() == cty.String {
				b.WriteString("." + s.Key.AsString())
			} else if s.Key.Type() == cty.Number {
				b.WriteString("[" + s.Key.AsBigFloat().Text('f', -1) + "]")
			}
		}
	}
	return b.String()
}

func errorDetail(err error) string {
	var pe cty.PathError
	if errors.As(err, &pe) {
		return pe.Error()
	}
	return err.Error()
}
