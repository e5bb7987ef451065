package match

import (
	"errors"
	"math"
	"strings"
	"unicode"
)

// ErrEmptyVocabulary is returned when no document yields a single term.
var ErrEmptyVocabulary = errors.New("empty vocabulary; documents contain only stop words or single characters")

// Vector is a sparse, L2-normalized TF-IDF vector keyed by term.
type Vector map[string]float64

// Vectorizer builds TF-IDF vectors over a small corpus: lowercase tokens of
// two or more word characters, English stop words removed, unigrams and
// bigrams, smoothed IDF and L2 normalization.
type Vectorizer struct {
	stopWords map[string]struct{}
	maxN      int
}

// NewVectorizer returns a unigram+bigram vectorizer with English stop words.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{stopWords: englishStopWords, maxN: 2}
}

// Terms returns the analyzed terms of doc in order, n-grams after unigrams.
func (v *Vectorizer) Terms(doc string) []string {
	var tokens []string
	for _, tok := range strings.FieldsFunc(strings.ToLower(doc), func(r rune) bool { return !isWordRune(r) }) {
		if len([]rune(tok)) < 2 {
			continue
		}
		if _, stop := v.stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := append([]string(nil), tokens...)
	for n := 2; n <= v.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// FitTransform learns IDF weights from docs and returns one vector per doc.
func (v *Vectorizer) FitTransform(docs []string) ([]Vector, error) {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tf := make(map[string]int)
		for _, term := range v.Terms(doc) {
			tf[term]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}
	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	n := float64(len(docs))
	out := make([]Vector, len(docs))
	for i, tf := range counts {
		vec := make(Vector, len(tf))
		var norm float64
		for term, c := range tf {
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			w := float64(c) * idf
			vec[term] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range vec {
				vec[term] /= norm
			}
		}
		out[i] = vec
	}
	return out, nil
}

// Cosine returns the cosine similarity of a and b; zero vectors give 0.
func Cosine(a, b Vector) float64 {
	var dot, na, nb float64
	for term, wa := range a {
		na += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		nb += wb * wb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Similarity vectorizes the pair and returns their cosine similarity.
func (v *Vectorizer) Similarity(a, b string) (float64, error) {
	vecs, err := v.FitTransform([]string{a, b})
	if err != nil {
		return 0, err
	}
	return Cosine(vecs[0], vecs[1]), nil
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
