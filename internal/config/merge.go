package config

import "fmt"

// Merge combines manifests in order. Categories are de-duplicated;
// components are concatenated, so duplicates surface when they are
// registered. Two different non-empty projects are an error.
func Merge(manifests ...*Manifest) (*Manifest, error) {
	out := &Manifest{}
	seenCategory := make(map[string]bool)
	for _, m := range manifests {
		if m == nil {
			continue
		}
		if m.Project != "" {
			if out.Project != "" && out.Project != m.Project {
				return nil, fmt.Errorf("manifests disagree on project: %q and %q", out.Project, m.Project)
			}
			out.Project = m.Project
		}
		for _, c := range m.Categories {
			if !seenCategory[string(c)] {
				seenCategory[string(c)] = true
				out.Categories = append(out.Categories, c)
			}
		}
		out.Components = append(out.Components, m.Components...)
	}
	return out, nil
}
