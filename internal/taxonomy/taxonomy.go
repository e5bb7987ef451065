// Package taxonomy holds the skill dictionary, synonym table, category weights
// and keyword lists shared read-only by the extractor, scorer and summarizer.
package taxonomy

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// AdditionalCategory holds free-form technical tokens that are not drawn from the taxonomy.
const AdditionalCategory = "additional"

//go:embed default.yaml
var defaultDocument []byte

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
	defaultErr  error
)

// Category is one named group of skill aliases.
type Category struct {
	Name    string   `yaml:"name" json:"name" validate:"required"`
	Weight  float64  `yaml:"weight" json:"weight" validate:"gt=0,lte=1"`
	Aliases []string `yaml:"aliases" json:"aliases" validate:"required,min=1,dive,required"`
}

// Synonym maps an alternate spelling to its canonical form.
type Synonym struct {
	Alias     string `yaml:"alias" json:"alias" validate:"required"`
	Canonical string `yaml:"canonical" json:"canonical" validate:"required"`
}

type document struct {
	DefaultWeight      float64    `yaml:"default_weight" validate:"gt=0,lte=1"`
	AdditionalWeight   float64    `yaml:"additional_weight" validate:"gt=0,lte=1"`
	Categories         []Category `yaml:"categories" validate:"required,min=1,dive"`
	Synonyms           []Synonym  `yaml:"synonyms" validate:"dive"`
	TechnicalSuffixes  []string   `yaml:"technical_suffixes" validate:"dive,required,alphanum"`
	EducationKeywords  []string   `yaml:"education_keywords" validate:"dive,required"`
	ExperienceKeywords []string   `yaml:"experience_keywords" validate:"dive,required"`
}

// Taxonomy is immutable after construction and safe for concurrent use.
type Taxonomy struct {
	doc       document
	canonical map[string]string
	weights   map[string]float64
}

// Default returns the embedded taxonomy, parsed once per process.
func Default() (*Taxonomy, error) {
	defaultOnce.Do(func() {
		defaultTax, defaultErr = Parse(defaultDocument)
	})
	return defaultTax, defaultErr
}

// MustDefault is Default for callers that cannot recover from a broken embedded document.
func MustDefault() *Taxonomy {
	tax, err := Default()
	if err != nil {
		panic(fmt.Sprintf("taxonomy: embedded document invalid: %v", err))
	}
	return tax
}

// LoadFile parses a taxonomy document from disk.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	tax, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return tax, nil
}

// Parse decodes and validates a YAML taxonomy document.
func Parse(data []byte) (*Taxonomy, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("validate taxonomy: %w", err)
	}

	weights := make(map[string]float64, len(doc.Categories)+1)
	for _, cat := range doc.Categories {
		if cat.Name == AdditionalCategory {
			return nil, errors.New("validate taxonomy: category name \"additional\" is reserved")
		}
		if _, dup := weights[cat.Name]; dup {
			return nil, fmt.Errorf("validate taxonomy: duplicate category %q", cat.Name)
		}
		weights[cat.Name] = cat.Weight
	}
	weights[AdditionalCategory] = doc.AdditionalWeight

	// First mapping wins, matching a lookup that stops at the first equal alias.
	canonical := make(map[string]string, len(doc.Synonyms))
	for _, syn := range doc.Synonyms {
		if _, ok := canonical[syn.Alias]; !ok {
			canonical[syn.Alias] = syn.Canonical
		}
	}

	return &Taxonomy{doc: doc, canonical: canonical, weights: weights}, nil
}

// Categories returns the categories in document order.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(t.doc.Categories))
	for i, cat := range t.doc.Categories {
		out[i] = Category{
			Name:    cat.Name,
			Weight:  cat.Weight,
			Aliases: append([]string(nil), cat.Aliases...),
		}
	}
	return out
}

// Synonyms returns the synonym pairs in application order.
func (t *Taxonomy) Synonyms() []Synonym {
	return append([]Synonym(nil), t.doc.Synonyms...)
}

// Canonical resolves an alias to its canonical form; unmapped aliases are their own canonical form.
func (t *Taxonomy) Canonical(alias string) string {
	if c, ok := t.canonical[alias]; ok {
		return c
	}
	return alias
}

// HasMapping reports whether alias has a synonym entry.
func (t *Taxonomy) HasMapping(alias string) bool {
	_, ok := t.canonical[alias]
	return ok
}

// Weight returns the scoring weight for a category, falling back to the default weight.
func (t *Taxonomy) Weight(category string) float64 {
	if w, ok := t.weights[category]; ok {
		return w
	}
	return t.doc.DefaultWeight
}

// TechnicalSuffixes lists the domain-like suffixes collected into the additional bucket.
func (t *Taxonomy) TechnicalSuffixes() []string {
	return append([]string(nil), t.doc.TechnicalSuffixes...)
}

// EducationKeywords lists the keywords that mark an education line.
func (t *Taxonomy) EducationKeywords() []string {
	return append([]string(nil), t.doc.EducationKeywords...)
}

// ExperienceKeywords lists the keywords that mark an experience line.
func (t *Taxonomy) ExperienceKeywords() []string {
	return append([]string(nil), t.doc.ExperienceKeywords...)
}

// Description is the read-only view served by the introspection endpoints.
type Description struct {
	DefaultWeight      float64    `json:"default_weight"`
	AdditionalWeight   float64    `json:"additional_weight"`
	Categories         []Category `json:"categories"`
	Synonyms           []Synonym  `json:"synonyms"`
	TechnicalSuffixes  []string   `json:"technical_suffixes"`
	EducationKeywords  []string   `json:"education_keywords"`
	ExperienceKeywords []string   `json:"experience_keywords"`
}

// Describe returns a deep copy of the taxonomy contents.
func (t *Taxonomy) Describe() Description {
	return Description{
		DefaultWeight:      t.doc.DefaultWeight,
		AdditionalWeight:   t.Weight(AdditionalCategory),
		Categories:         t.Categories(),
		Synonyms:           t.Synonyms(),
		TechnicalSuffixes:  t.TechnicalSuffixes(),
		EducationKeywords:  t.EducationKeywords(),
		ExperienceKeywords: t.ExperienceKeywords(),
	}
}
