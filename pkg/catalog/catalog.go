package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultDocument []byte

// Product is a featured product card.
type Product struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
}

// Suggestion is a search suggestion linking to a product page.
type Suggestion struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

type document struct {
	Featured    []Product    `yaml:"featured"`
	Suggestions []Suggestion `yaml:"suggestions"`
}

// Catalog is an immutable in-memory product catalog.
type Catalog struct {
	featured    []Product
	suggestions []Suggestion
	folded      []string // case-folded suggestion names, index-aligned with suggestions
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary. It is parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(bytes.NewReader(defaultDocument))
	})
	return defaultCatalog, defaultErr
}

// MustDefault is like Default but panics on error.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("catalog: failed to load embedded catalog: %v", err))
	}
	return c
}

// Load decodes a YAML catalog document from r.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	return New(doc.Featured, doc.Suggestions)
}

// New builds a catalog from literal values.
func New(featured []Product, suggestions []Suggestion) (*Catalog, error) {
	if len(featured) == 0 && len(suggestions) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, p := range featured {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: featured[%d] has no name", ErrInvalidEntry, i)
		}
	}

	fold := cases.Fold()
	folded := make([]string, len(suggestions))
	for i, s := range suggestions {
		if s.Name == "" || s.Href == "" {
			return nil, fmt.Errorf("%w: suggestions[%d] needs name and href", ErrInvalidEntry, i)
		}
		folded[i] = fold.String(s.Name)
	}

	return &Catalog{
		featured:    append([]Product(nil), featured...),
		suggestions: append([]Suggestion(nil), suggestions...),
		folded:      folded,
	}, nil
}

// Featured returns a copy of the featured products.
func (c *Catalog) Featured() []Product {
	return append([]Product(nil), c.featured...)
}

// Suggestions returns a copy of every suggestion.
func (c *Catalog) Suggestions() []Suggestion {
	return append([]Suggestion(nil), c.suggestions...)
}

// Search returns the suggestions whose name contains q, ignoring case.
// The query is trimmed first; an empty query matches nothing.
// A limit <= 0 means no limit.
func (c *Catalog) Search(q string, limit int) []Suggestion {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	// Casers are stateful, so each call gets its own.
	needle := cases.Fold().String(q)

	var out []Suggestion
	for i, name := range c.folded {
		if !strings.Contains(name, needle) {
			continue
		}
		out = append(out, c.suggestions[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
