// Package config provides the plan file loader for toolup.
package config

import (
	"os"

	"go.trai.ch/toolup/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML plan file.
type FileConfigLoader struct{}

// NewLoader creates a new FileConfigLoader.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// Toolfile represents the structure of the toolchain.yaml plan file.
// Tools is a YAML sequence, not a map: plan order is significant.
type Toolfile struct {
	Version string    `yaml:"version"`
	Tools   []ToolDTO `yaml:"tools"`
}

// ToolDTO represents a single tool entry in the plan file.
type ToolDTO struct {
	Name     string   `yaml:"name"`
	Version  string   `yaml:"version"`
	Requires []string `yaml:"requires"`
}

// Load reads a plan file from the given path and returns a validated plan.
func (l *FileConfigLoader) Load(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read plan file")
	}

	var toolfile Toolfile
	if err := yaml.Unmarshal(data, &toolfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse plan file")
	}

	specs := make([]domain.ToolSpec, len(toolfile.Tools))
	for i, dto := range toolfile.Tools {
		specs[i] = domain.ToolSpec{
			Name:     dto.Name,
			Version:  dto.Version,
			Requires: dto.Requires,
		}
	}

	plan := domain.NewPlan(specs)
	if err := plan.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid plan file")
	}

	return plan, nil
}
