package skills

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-scanner/internal/taxonomy"
)

// Normalizer lowercases and cleans text and rewrites synonyms to canonical spellings.
type Normalizer struct {
	synonyms []taxonomy.Synonym
}

// NewNormalizer captures the synonym table of tax in application order.
func NewNormalizer(tax *taxonomy.Taxonomy) *Normalizer {
	return &Normalizer{synonyms: tax.Synonyms()}
}

// Normalize cleans text and then applies every synonym pair in order. The
// replacements are plain substring rewrites applied one pair after another, so
// an alias embedded in a longer word is rewritten too and a later pair sees the
// output of earlier ones.
func (n *Normalizer) Normalize(text string) string {
	return n.ApplySynonyms(Clean(text))
}

// ApplySynonyms runs only the sequential synonym rewrite.
func (n *Normalizer) ApplySynonyms(text string) string {
	for _, syn := range n.synonyms {
		text = strings.ReplaceAll(text, syn.Alias, syn.Canonical)
	}
	return text
}

// Clean lowercases text, replaces everything except word characters,
// whitespace, hyphens and dots with a space, and collapses whitespace.
func Clean(text string) string {
	// Casers carry state, so each call gets its own.
	lowered := cases.Lower(language.Und).String(text)
	replaced := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) || r == '-' || r == '.' {
			return r
		}
		return ' '
	}, lowered)
	return strings.Join(strings.Fields(replaced), " ")
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
