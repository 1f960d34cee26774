// Package catalog holds the reference pricing seed.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"quotebot/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed pricing.yaml
var defaultPricing []byte

type seedFile struct {
	Pricing []entities.PricingEntry `yaml:"pricing"`
}

// Default returns the built-in HausVac pricing rows in file order.
func Default() ([]entities.PricingEntry, error) {
	return Parse(defaultPricing)
}

// Load reads a seed file from path, or the built-in seed when path is empty.
func Load(path string) ([]entities.PricingEntry, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML seed document.
func Parse(data []byte) ([]entities.PricingEntry, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	for i, e := range f.Pricing {
		if !e.UnitKind.Valid() {
			return nil, fmt.Errorf("catalog entry %d (%s/%s): unknown unit_kind %q", i, e.ItemType, e.Material, e.UnitKind)
		}
	}
	return f.Pricing, nil
}
