// Package match scores extracted resume skills against a job description.
package match

import (
	"math"
	"strconv"
	"strings"

	"resume-scanner/internal/skills"
	"resume-scanner/internal/taxonomy"
)

const (
	skillPoints = 70.0
	tfidfPoints = 30.0
	maxScore    = 100.0

	partialFactor   = 0.8
	wordLevelFactor = 0.6
)

// Tag records how a resume skill matched the job description.
type Tag string

const (
	TagExact     Tag = "exact"
	TagPartial   Tag = "partial"
	TagWordLevel Tag = "word-level"
)

// SkillMatch is one resume skill found in the job description.
type SkillMatch struct {
	Category string  `json:"category"`
	Skill    string  `json:"skill"`
	Tag      Tag     `json:"tag"`
	Awarded  float64 `json:"awarded"`
}

// Result is a score with the parts it was built from.
type Result struct {
	Score       float64      `json:"score"`
	SkillScore  float64      `json:"skill_score"`
	TFIDFScore  float64      `json:"tfidf_score"`
	Bonus       float64      `json:"bonus"`
	Awarded     float64      `json:"awarded"`
	MaxPossible float64      `json:"max_possible"`
	Matches     []SkillMatch `json:"matches"`
}

// Scorer is stateless after construction and safe for concurrent use.
type Scorer struct {
	tax        *taxonomy.Taxonomy
	normalizer *skills.Normalizer
	vectorizer *Vectorizer
}

// NewScorer builds a scorer that normalizes job descriptions the same way
// resume text is normalized.
func NewScorer(tax *taxonomy.Taxonomy) *Scorer {
	return &Scorer{
		tax:        tax,
		normalizer: skills.NewNormalizer(tax),
		vectorizer: NewVectorizer(),
	}
}

// Score returns the 0-100 fit of found skills against jobDescription, rounded to two decimals.
func (s *Scorer) Score(found skills.Skills, jobDescription string) float64 {
	return s.Evaluate(found, jobDescription).Score
}

// Evaluate computes the score and its breakdown. Empty skills or a blank job
// description score 0.
func (s *Scorer) Evaluate(found skills.Skills, jobDescription string) Result {
	if found.IsEmpty() || strings.TrimSpace(jobDescription) == "" {
		return Result{}
	}

	jd := s.normalizer.Normalize(jobDescription)

	var res Result
	for _, entry := range found.Entries() {
		weight := s.tax.Weight(entry.Category)
		for _, skill := range entry.Skills {
			res.MaxPossible += weight
			tag, factor, ok := classify(jd, skill)
			if !ok {
				continue
			}
			awarded := weight * factor
			res.Awarded += awarded
			res.Matches = append(res.Matches, SkillMatch{
				Category: entry.Category,
				Skill:    skill,
				Tag:      tag,
				Awarded:  awarded,
			})
		}
	}

	if res.MaxPossible > 0 {
		res.SkillScore = res.Awarded / res.MaxPossible * skillPoints
	}
	res.TFIDFScore = s.similarity(found, jobDescription) * tfidfPoints

	switch n := len(res.Matches); {
	case n >= 5:
		res.Bonus = 5
	case n >= 3:
		res.Bonus = 2
	}

	total := math.Min(maxScore, res.SkillScore+res.TFIDFScore+res.Bonus)
	res.Score = round2(math.Max(0, total))
	return res
}

// classify applies the match rules in priority order; only the first that holds counts.
func classify(jd, skill string) (Tag, float64, bool) {
	if strings.Contains(jd, skill) || skills.ContainsWord(jd, skill) {
		return TagExact, 1, true
	}
	words := strings.Fields(skill)
	if len(words) > 1 && strings.Contains(jd, skill) {
		return TagPartial, partialFactor, true
	}
	for _, w := range words {
		if strings.Contains(jd, w) {
			return TagWordLevel, wordLevelFactor, true
		}
	}
	return "", 0, false
}

// similarity compares the bag of all skill names with the job description.
// Vectorization failures count as no similarity.
func (s *Scorer) similarity(found skills.Skills, jobDescription string) float64 {
	bag := strings.Join(found.All(), " ")
	if bag == "" {
		return 0
	}
	sim, err := s.vectorizer.Similarity(bag, jobDescription)
	if err != nil {
		return 0
	}
	return sim
}

// round2 rounds the exact binary value half to even, so 0.125 becomes 0.12
// and 0.015 (stored just below) becomes 0.01.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
