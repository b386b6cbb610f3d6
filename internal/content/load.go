package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the built-in copy overlaid with the YAML file at path.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Site, error) {
	site := Default()
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return site, nil
		}
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}

	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content file %s: %w", path, err)
	}

	return site, nil
}

// Validate checks skill categories and proficiency bounds
func (s *Site) Validate() error {
	for _, skill := range s.Skills {
		if skill.Name == "" {
			return fmt.Errorf("skill with empty name")
		}
		if !skill.Category.Valid() {
			return fmt.Errorf("skill %s: unknown category %q", skill.Name, skill.Category)
		}
		if skill.Level < 0 || skill.Level > 100 {
			return fmt.Errorf("skill %s: level %d out of range 0-100", skill.Name, skill.Level)
		}
	}
	return nil
}
