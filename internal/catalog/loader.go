package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a catalog from a JSON file. An empty path returns the built-in
// demo catalog.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err := validate(c); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}

	return c, nil
}

func validate(c Catalog) error {
	if c.UnitPrice < 0 {
		return fmt.Errorf("unit price must not be negative, got %v", c.UnitPrice)
	}
	if len(c.Designs) == 0 {
		return fmt.Errorf("catalog must contain at least one design")
	}
	seen := make(map[string]bool, len(c.Designs))
	for i, d := range c.Designs {
		if d.ID == "" {
			return fmt.Errorf("design %d has an empty id", i)
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate design id %q", d.ID)
		}
		seen[d.ID] = true
		if d.Name == "" {
			return fmt.Errorf("design %q has an empty name", d.ID)
		}
	}
	return nil
}
