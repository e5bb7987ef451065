// Package skills finds taxonomy skills and free-form technical terms in resume text.
package skills

import (
	"sort"
	"strings"

	"resume-scanner/internal/taxonomy"
)

// Extraction is the result of one Extract call.
type Extraction struct {
	Skills Skills
	// Candidates are entity and noun terms from the annotation pass, in document order.
	Candidates []string
	// Normalized is the cleaned, synonym-rewritten text the skills were matched against.
	Normalized string
}

// Extractor matches taxonomy aliases against normalized text. It holds no
// per-call state and is safe for concurrent use.
type Extractor struct {
	tax        *taxonomy.Taxonomy
	categories []taxonomy.Category
	normalizer *Normalizer
	annotator  Annotator
	suffixes   []string
}

// NewExtractor builds an extractor; a nil annotator disables the annotation pass.
func NewExtractor(tax *taxonomy.Taxonomy, annotator Annotator) *Extractor {
	if annotator == nil {
		annotator = NopAnnotator{}
	}
	var suffixes []string
	for _, suffix := range tax.TechnicalSuffixes() {
		suffixes = append(suffixes, "."+suffix)
	}
	return &Extractor{
		tax:        tax,
		categories: tax.Categories(),
		normalizer: NewNormalizer(tax),
		annotator:  annotator,
		suffixes:   suffixes,
	}
}

// Normalizer exposes the normalizer the extractor uses, so job descriptions
// can be normalized identically.
func (e *Extractor) Normalizer() *Normalizer { return e.normalizer }

// Extract never fails; text with no recognizable skills yields empty Skills.
func (e *Extractor) Extract(raw string) Extraction {
	cleaned := Clean(raw)
	candidates := e.annotator.Annotate(cleaned)
	normalized := e.normalizer.ApplySynonyms(cleaned)
	target := NewTarget(normalized)

	var found Skills
	for _, cat := range e.categories {
		var canon []string
		seen := make(map[string]struct{}, len(cat.Aliases))
		for _, alias := range cat.Aliases {
			if _, ok := Present(target, alias); !ok {
				continue
			}
			c := e.tax.Canonical(alias)
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			canon = append(canon, c)
		}
		found.add(cat.Name, canon)
	}
	found.add(taxonomy.AdditionalCategory, e.technicalTerms(normalized))

	return Extraction{
		Skills:     found,
		Candidates: candidates,
		Normalized: normalized,
	}
}

// technicalTerms returns distinct domain-suffixed tokens such as "express.js", sorted.
func (e *Extractor) technicalTerms(normalized string) []string {
	set := make(map[string]struct{})
	for _, suffix := range e.suffixes {
		for _, term := range suffixedWords(normalized, suffix) {
			set[term] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for term := range set {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

// suffixedWords finds runs of ASCII lowercase letters followed by suffix,
// standing as a whole word. Word boundaries are Unicode-aware, so an accented
// letter on either side is part of the word and the term is rejected.
func suffixedWords(text, suffix string) []string {
	var out []string
	for start := 0; start < len(text); {
		if !isASCIILower(text[start]) || !WordBoundary(text, start) {
			start++
			continue
		}
		end := start
		for end < len(text) && isASCIILower(text[end]) {
			end++
		}
		if strings.HasPrefix(text[end:], suffix) && WordBoundary(text, end+len(suffix)) {
			out = append(out, text[start:end+len(suffix)])
			start = end + len(suffix)
			continue
		}
		start = end
	}
	return out
}

func isASCIILower(b byte) bool { return b >= 'a' && b <= 'z' }
