package skills

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
)

// Annotator collects candidate terms from normalized text. Candidates are
// reported alongside the taxonomy match but never change which skills are found.
type Annotator interface {
	Annotate(text string) []string
}

// ProseAnnotator finds named entities and common nouns longer than two
// characters. The tagging and entity model is loaded once and shared by every
// call; it is read-only after loading.
type ProseAnnotator struct {
	model *prose.Model
}

// NewProseAnnotator loads prose's bundled model.
func NewProseAnnotator() (*ProseAnnotator, error) {
	doc, err := prose.NewDocument("", prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("load prose model: %w", err)
	}
	return &ProseAnnotator{model: doc.Model}, nil
}

// Annotate returns entities followed by nouns, lowercased. Tagging failures yield nil.
func (a *ProseAnnotator) Annotate(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text, prose.UsingModel(a.model), prose.WithSegmentation(false))
	if err != nil {
		return nil
	}

	var out []string
	for _, ent := range doc.Entities() {
		out = append(out, strings.ToLower(ent.Text))
	}
	for _, tok := range doc.Tokens() {
		if !isCommonNoun(tok.Tag) {
			continue
		}
		if utf8.RuneCountInString(tok.Text) > 2 {
			out = append(out, strings.ToLower(tok.Text))
		}
	}
	return out
}

// Penn Treebank singular and plural common nouns; proper nouns are excluded.
func isCommonNoun(tag string) bool {
	return tag == "NN" || tag == "NNS"
}

// NopAnnotator disables the annotation pass.
type NopAnnotator struct{}

// Annotate always returns nil.
func (NopAnnotator) Annotate(string) []string { return nil }
