// Package summary derives simple statistics from raw resume text.
package summary

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-scanner/internal/skills"
	"resume-scanner/internal/taxonomy"
)

const (
	maxContacts  = 3
	charsPerPage = 2000
)

// ContactInfo holds at most three emails and three phone numbers, in order of appearance.
type ContactInfo struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// Summary is the per-resume statistics block.
type Summary struct {
	TotalSkills        int         `json:"total_skills"`
	SkillCategories    int         `json:"skill_categories"`
	ContactInfo        ContactInfo `json:"contact_info"`
	EducationMentions  int         `json:"education_mentions"`
	ExperienceMentions int         `json:"experience_mentions"`
	TextLength         int         `json:"text_length"`
	EstimatedPages     int         `json:"estimated_pages"`
}

// Summarizer is safe for concurrent use.
type Summarizer struct {
	education  []string
	experience []string
}

// NewSummarizer takes the section keyword lists from tax.
func NewSummarizer(tax *taxonomy.Taxonomy) *Summarizer {
	return &Summarizer{
		education:  tax.EducationKeywords(),
		experience: tax.ExperienceKeywords(),
	}
}

// Summarize scans the raw, non-normalized text.
func (s *Summarizer) Summarize(raw string, found skills.Skills) Summary {
	var edu, exp int
	for _, line := range strings.Split(raw, "\n") {
		lower := strings.ToLower(line)
		if containsAny(lower, s.education) {
			edu++
		}
		if containsAny(lower, s.experience) {
			exp++
		}
	}

	length := utf8.RuneCountInString(raw)
	return Summary{
		TotalSkills:     found.Total(),
		SkillCategories: found.Len(),
		ContactInfo: ContactInfo{
			Emails: findAll(raw, matchEmail, maxContacts),
			Phones: findAll(raw, matchPhone, maxContacts),
		},
		EducationMentions:  edu,
		ExperienceMentions: exp,
		TextLength:         length,
		EstimatedPages:     EstimatePages(length),
	}
}

// EstimatePages assumes 2000 characters per page, never fewer than one page.
func EstimatePages(length int) int {
	return max(1, length/charsPerPage)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// matcher returns the end offset of a match starting at start.
type matcher func(text string, start int) (int, bool)

// findAll scans left to right for up to limit non-overlapping matches, each
// starting and ending on a Unicode word boundary. The result is never nil so
// empty lists encode as [].
func findAll(text string, match matcher, limit int) []string {
	out := []string{}
	for start := 0; start < len(text) && len(out) < limit; {
		if skills.WordBoundary(text, start) {
			if end, ok := match(text, start); ok {
				out = append(out, text[start:end])
				start = end
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		start += size
	}
	return out
}

// matchEmail matches local@domain.tld: local from [A-Za-z0-9._%+-], domain
// from [A-Za-z0-9.-], and a tld of two or more [A-Za-z|]. The longest domain
// is preferred, then the longest tld, and the match must end on a word boundary.
func matchEmail(text string, start int) (int, bool) {
	at := span(text, start, isLocalByte)
	if at == start || at >= len(text) || text[at] != '@' {
		return 0, false
	}
	domainStart := at + 1
	domainEnd := span(text, domainStart, isDomainByte)
	for dot := domainEnd - 1; dot > domainStart; dot-- {
		if text[dot] != '.' {
			continue
		}
		tldStart := dot + 1
		for end := span(text, tldStart, isTLDByte); end-tldStart >= 2; end-- {
			if skills.WordBoundary(text, end) {
				return end, true
			}
		}
	}
	return 0, false
}

// matchPhone matches three, three and four decimal digits (any script), with
// an optional '-' or '.' after each of the first two groups.
func matchPhone(text string, start int) (int, bool) {
	pos := start
	for i, n := range []int{3, 3, 4} {
		for range n {
			r, size := utf8.DecodeRuneInString(text[pos:])
			if !unicode.IsDigit(r) {
				return 0, false
			}
			pos += size
		}
		if i < 2 && pos < len(text) && (text[pos] == '-' || text[pos] == '.') {
			pos++
		}
	}
	return pos, skills.WordBoundary(text, pos)
}

func span(text string, pos int, ok func(byte) bool) int {
	for pos < len(text) && ok(text[pos]) {
		pos++
	}
	return pos
}

func isAlnumByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func isLocalByte(b byte) bool { return isAlnumByte(b) || strings.IndexByte("._%+-", b) >= 0 }

func isDomainByte(b byte) bool { return isAlnumByte(b) || b == '.' || b == '-' }

func isTLDByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '|'
}
