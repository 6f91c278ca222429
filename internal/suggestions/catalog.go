// Package suggestions serves the fixed opportunity catalog. Prompt and profile
// are accepted by the API but do not influence the result.
package suggestions

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type Suggestion struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Company     string  `json:"company" yaml:"company"`
	Link        string  `json:"link" yaml:"link"`
	Type        string  `json:"type" yaml:"type"`
	MatchScore  float64 `json:"matchScore" yaml:"matchScore"`
	Description string  `json:"description" yaml:"description"`
}

type Catalog struct {
	items []Suggestion
}

// Load parses the embedded catalog
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse reads a YAML list of suggestions and orders it by score, best first
func Parse(data []byte) (*Catalog, error) {
	var items []Suggestion
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse suggestion catalog: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MatchScore > items[j].MatchScore
	})
	return &Catalog{items: items}, nil
}

// Suggest returns a copy of the ranked list
func (c *Catalog) Suggest() []Suggestion {
	out := make([]Suggestion, len(c.items))
	copy(out, c.items)
	return out
}
