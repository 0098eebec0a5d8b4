// Package catalog loads YAML selector catalogs and compiles them into
// renderable selectors, stylesheets and manifests.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

type (
	// Definition declares one named compound selector. Part values are
	// taken verbatim; order inside the compound is always the canonical
	// category order.
	Definition struct {
		Name          string   `yaml:"name"`
		Element       string   `yaml:"element,omitempty"`
		ID            string   `yaml:"id,omitempty"`
		Classes       []string `yaml:"classes,omitempty"`
		Attributes    []string `yaml:"attributes,omitempty"`
		PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
		PseudoElement string   `yaml:"pseudo_element,omitempty"`
	}

	// Combination joins two entries defined earlier in the document
	// with a combinator token: " ", ">", "+" or "~".
	Combination struct {
		Name  string `yaml:"name"`
		Left  string `yaml:"left"`
		Op    string `yaml:"op"`
		Right string `yaml:"right"`
	}

	// Declaration is one "property: value" pair of a rule.
	Declaration struct {
		Property string `yaml:"property"`
		Value    string `yaml:"value"`
	}

	// RuleDef attaches declarations to an entry by name.
	RuleDef struct {
		Selector     string        `yaml:"selector"`
		Declarations []Declaration `yaml:"declarations,omitempty"`
	}

	// Document is a parsed selector catalog.
	Document struct {
		Version   int           `yaml:"version"`
		Name      string        `yaml:"name,omitempty"`
		ID        string        `yaml:"id,omitempty"`
		Selectors []Definition  `yaml:"selectors"`
		Combined  []Combination `yaml:"combined,omitempty"`
		Rules     []RuleDef     `yaml:"rules,omitempty"`
	}
)

// Load decodes a catalog document. Unknown fields are rejected so
// typos do not silently drop parts of a catalog.
func Load(data []byte, log *zap.Logger) (*Document, error) {
	log = log.Named("catalog")

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog is empty")
		}
		return nil, fmt.Errorf("unable to decode catalog: %w", err)
	}
	if doc.Version != 1 {
		return nil, fmt.Errorf("unsupported catalog version %d", doc.Version)
	}

	log.Debug("Catalog loaded",
		zap.String("name", doc.Name),
		zap.Int("selectors", len(doc.Selectors)),
		zap.Int("combined", len(doc.Combined)),
		zap.Int("rules", len(doc.Rules)))
	return &doc, nil
}

// LoadFile reads and decodes the catalog at path.
func LoadFile(path string, log *zap.Logger) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read catalog: %w", err)
	}
	doc, err := Load(data, log)
	if err != nil {
		return nil, fmt.Errorf("unable to load catalog %s: %w", path, err)
	}
	return doc, nil
}
