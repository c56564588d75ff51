// Package dataset loads the raw input collections from disk.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/retailops/salesreport/pkg/sales"
)

// Load reads a JSON dataset file holding the sellers, products, and
// purchase_records collections. Structural validation happens later in
// analyze; Load only requires well-formed JSON.
func Load(path string) (*sales.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds sales.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	return &ds, nil
}

// Save writes a dataset to a JSON file. Mainly useful for generating
// fixtures and examples.
func Save(path string, ds *sales.Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	return nil
}
