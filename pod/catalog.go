package pod

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed fields.yaml
var fieldsYAML []byte

// Field is one displayed instance attribute.
type Field struct {
	Label string `yaml:"label"`
	Key   string `yaml:"key"`
	Unit  string `yaml:"unit"`
}

// Section groups fields under a heading (CPU, GPU, Network, ...).
type Section struct {
	Name   string  `yaml:"section"`
	Fields []Field `yaml:"fields"`
}

// Catalog holds the built-in sections in definition order.
type Catalog struct {
	sections []Section
}

// NewCatalog returns the built-in field catalog.
func NewCatalog() *Catalog {
	var sections []Section
	if err := yaml.Unmarshal(fieldsYAML, &sections); err != nil {
		panic("fields.yaml: " + err.Error())
	}
	return &Catalog{sections: sections}
}

// Sections returns all sections in definition order.
func (c *Catalog) Sections() []Section {
	return c.sections
}

// Keys returns every metadata key referenced by the catalog.
func (c *Catalog) Keys() []string {
	var keys []string
	for _, s := range c.sections {
		for _, f := range s.Fields {
			keys = append(keys, f.Key)
		}
	}
	return keys
}
