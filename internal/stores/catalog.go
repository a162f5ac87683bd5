package stores

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"order-webhook/internal/domain"
)

//go:embed stores.yaml
var embeddedCatalog []byte

// document is the YAML layout of a store catalog.
type document struct {
	Default string                `yaml:"default"`
	Stores  []domain.StoreContext `yaml:"stores"`
}

// Catalog maps store tags to their configuration. It is read-only after construction.
type Catalog struct {
	defaultTag string
	stores     map[string]domain.StoreContext
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Parse builds a catalog from a YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &domain.ConfigError{
			ConfigName: "stores",
			Err:        fmt.Errorf("%w: %v", domain.ErrInvalidStoreCatalog, err),
		}
	}

	if err := validate(&doc); err != nil {
		return nil, &domain.ConfigError{
			ConfigName: "stores",
			Err:        fmt.Errorf("%w: %w", domain.ErrInvalidStoreCatalog, err),
		}
	}

	c := &Catalog{
		defaultTag: normalizeTag(doc.Default),
		stores:     make(map[string]domain.StoreContext, len(doc.Stores)),
	}
	for _, s := range doc.Stores {
		s.Tag = normalizeTag(s.Tag)
		c.stores[s.Tag] = s
	}

	return c, nil
}

// WithDefault returns a copy of the catalog whose fallback store is tag.
// The current default is kept when tag is unknown.
func (c *Catalog) WithDefault(tag string) *Catalog {
	tag = normalizeTag(tag)
	if _, ok := c.stores[tag]; !ok {
		return c
	}
	return &Catalog{defaultTag: tag, stores: c.stores}
}

// Lookup returns the store for tag, falling back to the default store.
func (c *Catalog) Lookup(tag string) domain.StoreContext {
	if s, ok := c.stores[normalizeTag(tag)]; ok {
		return s
	}
	return c.stores[c.defaultTag]
}

// Len returns the number of configured stores.
func (c *Catalog) Len() int {
	return len(c.stores)
}

func validate(doc *document) error {
	var errs []error

	if len(doc.Stores) == 0 {
		errs = append(errs, errors.New("stores must not be empty"))
	}

	seen := make(map[string]bool, len(doc.Stores))
	for i, s := range doc.Stores {
		tag := normalizeTag(s.Tag)
		if tag == "" {
			errs = append(errs, fmt.Errorf("stores[%d].tag is required", i))
		} else if seen[tag] {
			errs = append(errs, fmt.Errorf("stores[%d].tag %q is duplicated", i, tag))
		}
		seen[tag] = true

		if s.TemplateName == "" {
			errs = append(errs, fmt.Errorf("stores[%d].template_name is required", i))
		}
		if s.TemplateLanguage == "" {
			errs = append(errs, fmt.Errorf("stores[%d].template_language is required", i))
		}
		if s.CurrencySymbol == "" {
			errs = append(errs, fmt.Errorf("stores[%d].currency is required", i))
		}
		if s.DefaultCountry == "" {
			errs = append(errs, fmt.Errorf("stores[%d].default_country is required", i))
		}
	}

	if !seen[normalizeTag(doc.Default)] {
		errs = append(errs, fmt.Errorf("default store %q is not defined", doc.Default))
	}

	return errors.Join(errs...)
}

func normalizeTag(tag string) string {
	return strings.ToUpper(strings.TrimSpace(tag))
}
