// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"fmt"
	"os"

	"github.com/danielhkuo/quickly-draw/models"
	"gopkg.in/yaml.v3"
)

// Overrides maps a participant name key to the item name that participant
// always receives.
type Overrides map[string]string

// DefaultOverrides returns the overrides compiled into the server.
func DefaultOverrides() Overrides {
	return Overrides{
		NameKey("ana clara carriom"): "Chester",
		NameKey("dione cleide"):      "Lasanha",
	}
}

// Resolve returns the forced item name for a participant, if any.
func (o Overrides) Resolve(name string) (string, bool) {
	item, ok := o[NameKey(name)]
	return item, ok
}

type overridesFile struct {
	Overrides map[string]string `yaml:"overrides"`
}

// LoadOverrides reads a YAML file of the form
//
//	overrides:
//	  "some person": "Some Item"
//
// and merges it over the defaults. An empty path returns the defaults.
func LoadOverrides(path string) (Overrides, error) {
	out := DefaultOverrides()
	if path == "" {
		return out, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file: %w", err)
	}

	var file overridesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse overrides file: %w", err)
	}

	for name, item := range file.Overrides {
		key := NameKey(name)
		item = CleanName(item)
		if key == "" || item == "" {
			return nil, fmt.Errorf("override %q -> %q: name and item are required", name, item)
		}
		out[key] = item
	}

	return out, nil
}

// findItem returns the first catalog item, in creation order, whose name
// matches itemName case-insensitively.
func findItem(usage []models.ItemUsage, itemName string) (models.ItemUsage, bool) {
	key := NameKey(itemName)
	for _, u := range usage {
		if NameKey(u.Item.Name) == key {
			return u, true
		}
	}
	return models.ItemUsage{}, false
}
