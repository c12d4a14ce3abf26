package lexicon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type overrideFile struct {
	Terms map[string]float64 `yaml:"terms"`
}

// LoadOverrides reads extra lexicon terms from a YAML (or JSON) file of the form
//
//	terms:
//	  entrega expressa: 2.0
//	  estragado: -2.5
//
// Weights outside [MinWeight, MaxWeight] are rejected.
func LoadOverrides(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon file %s: %w", filepath.Base(path), err)
	}

	terms := make(map[string]float64, len(file.Terms))
	for term, weight := range file.Terms {
		key := Normalize(term)
		if key == "" {
			return nil, fmt.Errorf("lexicon file %s: empty term", filepath.Base(path))
		}
		if weight < MinWeight || weight > MaxWeight {
			return nil, fmt.Errorf("lexicon file %s: weight %.2f for %q outside [%.0f, %.0f]",
				filepath.Base(path), weight, strings.TrimSpace(term), MinWeight, MaxWeight)
		}
		terms[key] = weight
	}

	return terms, nil
}
