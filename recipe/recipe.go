// Package recipe compiles declarative YAML selector recipes into CSS
// selector strings using the selector builder.
package recipe

import (
	"bytes"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Combine joins two nested recipes with a CSS combinator.
type Combine struct {
	Left       *Recipe `yaml:"left"`
	Combinator string  `yaml:"combinator"`
	Right      *Recipe `yaml:"right"`
}

// Recipe describes a single selector. Either the fragment fields or Combine
// is used - a combining recipe carries no fragment data of its own.
type Recipe struct {
	Name          string   `yaml:"name,omitempty"`
	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attr          string   `yaml:"attr,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`
	Combine       *Combine `yaml:"combine,omitempty"`
}

// hasFragments reports whether any simple-selector field is set.
func (r *Recipe) hasFragments() bool {
	return r.Element != "" || r.ID != "" || len(r.Classes) > 0 ||
		r.Attr != "" || len(r.PseudoClasses) > 0 || r.PseudoElement != ""
}

// Book is a recipe file: a versioned list of selector recipes.
type Book struct {
	Version   int      `yaml:"version"`
	Selectors []Recipe `yaml:"selectors"`
}

// ParseBook decodes a recipe file rejecting unknown fields.
func ParseBook(data []byte) (*Book, error) {
	var book Book
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&book); err != nil {
		return nil, fmt.Errorf("failed to decode recipe data: %w", err)
	}
	if book.Version != 1 {
		return nil, fmt.Errorf("unsupported recipe file version %d", book.Version)
	}
	return &book, nil
}

// LoadBook reads and decodes a recipe file from the given path.
func LoadBook(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}
	book, err := ParseBook(data)
	if err != nil {
		return nil, fmt.Errorf("recipe file '%s': %w", path, err)
	}
	return book, nil
}
