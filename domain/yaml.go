package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML form of a qualitative domain.
type Definition struct {
	Labels []LabelDef `yaml:"labels"`
}

// LabelDef is the YAML form of a single label.
type LabelDef struct {
	// Name must be in standardized form (lowercase, no surrounding space)
	Name string `yaml:"name"`
	// Limits are the 3 or 4 ascending trapezoidal limits
	Limits []float64 `yaml:"limits"`
}

// ParseYAML builds a qualitative domain from YAML data.
func ParseYAML(data []byte) (*Qualitative, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse domain definition: %w", err)
	}
	specs := make([]LabelSpec, len(def.Labels))
	for i, l := range def.Labels {
		specs[i] = LabelSpec{Name: l.Name, Limits: l.Limits}
	}
	return NewQualitativeFromSpecs(specs)
}

// LoadFile builds a qualitative domain from a YAML file.
func LoadFile(path string) (*Qualitative, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read domain file: %w", err)
	}
	return ParseYAML(data)
}
