// Package config loads optional project-level settings for svcmerge.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds settings loaded from svcmerge.yml next to the
// listings. Flags override every field.
type ProjectConfig struct {
	Format  string `yaml:"format,omitempty"`
	Output  string `yaml:"output,omitempty"`
	Title   string `yaml:"title,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Load attempts to read svcmerge.yml or svcmerge.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"svcmerge.yml", "svcmerge.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
