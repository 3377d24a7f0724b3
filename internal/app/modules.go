package app

import (
	"fmt"

	"github.com/specialistvlad/schematic/internal/registry"
	"github.com/specialistvlad/schematic/internal/storage"
	"github.com/specialistvlad/schematic/modules/collect"
	"github.com/specialistvlad/schematic/modules/env_vars"
	"github.com/specialistvlad/schematic/modules/merge"
	"github.com/specialistvlad/schematic/modules/params"
	"github.com/specialistvlad/schematic/modules/picker"
)

// coreModules is the list of strategy modules compiled into the binary.
// Modules that need shared state resolve it from services.
func coreModules(services *storage.Services) ([]registry.Module, error) {
	pickers, err := storage.Lookup[*storage.Pickers](services, servicePickers)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dataset pickers: %w", err)
	}
	return []registry.Module{
		&params.Module{},
		&collect.Module{},
		&merge.Module{},
		&env_vars.Module{},
		picker.New(pickers),
	}, nil
}
