package render

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// CatalogEntry describes a template for enumeration UIs.
type CatalogEntry struct {
	ID      string  `yaml:"id" json:"id"`
	Label   string  `yaml:"label" json:"label"`
	Layout  string  `yaml:"layout" json:"layout"`
	Palette Palette `yaml:"-" json:"palette"`
}

type catalogDoc struct {
	Templates []CatalogEntry `yaml:"templates"`
}

var (
	catalogOnce    sync.Once
	catalogEntries map[string]CatalogEntry
	catalogErr     error
)

func loadCatalog() (map[string]CatalogEntry, error) {
	catalogOnce.Do(func() {
		var doc catalogDoc
		if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
			catalogErr = fmt.Errorf("render: parse catalog: %w", err)
			return
		}
		entries := make(map[string]CatalogEntry, len(doc.Templates))
		for _, entry := range doc.Templates {
			if entry.ID == "" {
				catalogErr = fmt.Errorf("render: catalog entry without id")
				return
			}
			entry.Palette = Palettes[entry.ID]
			entries[entry.ID] = entry
		}
		catalogEntries = entries
	})
	return catalogEntries, catalogErr
}

// Catalog returns display metadata for every id in the registry, in
// registration order. Ids without catalog metadata are listed with the id as
// their label.
func (r *Registry) Catalog() ([]CatalogEntry, error) {
	entries, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	ids := r.IDs()
	out := make([]CatalogEntry, 0, len(ids))
	for _, id := range ids {
		entry, ok := entries[id]
		if !ok {
			entry = CatalogEntry{ID: id, Label: id}
		}
		out = append(out, entry)
	}
	return out, nil
}
