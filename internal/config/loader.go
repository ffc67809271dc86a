package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile decodes the YAML file at path into dest. Keys absent from the file
// leave the corresponding fields of dest untouched, so dest should carry defaults.
func LoadFile(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("error parsing YAML: %w", err)
	}

	return nil
}
