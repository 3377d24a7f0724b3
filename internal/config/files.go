package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/schematic/internal/fsutil"
)

// CollectFiles walks paths and returns, once each, every file ending in one
// of extensions. Paths that do not exist are skipped; an explicitly named
// file with another extension is ignored.
func CollectFiles(paths []string, extensions ...string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			for _, ext := range extensions {
				if strings.HasSuffix(path, ext) {
					add(path)
					break
				}
			}
			continue
		}
		found, err := fsutil.FindFiles(path, extensions...)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}
