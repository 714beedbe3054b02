package levels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML layout accepted by tier import:
//
//	levels:
//	  - level: 1
//	    number_range_min: 1
//	    number_range_max: 10
//	    question_count: 10
type File struct {
	Levels []LevelConfig `yaml:"levels"`
}

// ParseYAML decodes and normalizes a tier file.
func ParseYAML(data []byte) ([]LevelConfig, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("levels: parse: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("levels: file declares no levels")
	}
	tiers, err := Normalize(f.Levels)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	return tiers, nil
}

// LoadFile reads a tier file from disk.
func LoadFile(path string) ([]LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return ParseYAML(data)
}
