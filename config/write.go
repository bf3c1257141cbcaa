package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// WriteDefault writes the default configuration as YAML, refusing to overwrite an existing file
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
