package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-scanner/internal/skills"
	"resume-scanner/internal/taxonomy"
)

func newTestSummarizer() *Summarizer {
	return NewSummarizer(taxonomy.MustDefault())
}

func TestSummarizeContactInfo(t *testing.T) {
	got := newTestSummarizer().Summarize("Contact: a@b.com, 555-123-4567", skills.Skills{})

	assert.Equal(t, []string{"a@b.com"}, got.ContactInfo.Emails)
	assert.Equal(t, []string{"555-123-4567"}, got.ContactInfo.Phones)
}

func TestSummarizeCapsContacts(t *testing.T) {
	text := "A.One@Example.com b@x.io c@y.org d@z.net\n555.123.4567 5551234567 555-123-4567 111-222-3333"

	got := newTestSummarizer().Summarize(text, skills.Skills{})

	assert.Equal(t, []string{"A.One@Example.com", "b@x.io", "c@y.org"}, got.ContactInfo.Emails)
	assert.Equal(t, []string{"555.123.4567", "5551234567", "555-123-4567"}, got.ContactInfo.Phones)
}

func TestSummarizeContactsUseUnicodeWords(t *testing.T) {
	tests := []struct {
		text   string
		emails []string
		phones []string
	}{
		{"tel ٥٥٥-١٢٣-٤٥٦٧", []string{}, []string{"٥٥٥-١٢٣-٤٥٦٧"}},
		{"x5551234567 12345678901 555-123-45678", []string{}, []string{}},
		{"ñame@x.io a@b.comé ok@x.io", []string{"ok@x.io"}, []string{}},
		{"a@b.com.x q@w.e", []string{"a@b.com"}, []string{}},
		{"mail: a@b.c|d, .x@y.org", []string{"a@b.c|d", "x@y.org"}, []string{}},
	}
	for _, tt := range tests {
		got := newTestSummarizer().Summarize(tt.text, skills.Skills{})
		assert.Equal(t, tt.emails, got.ContactInfo.Emails, tt.text)
		assert.Equal(t, tt.phones, got.ContactInfo.Phones, tt.text)
	}
}

func TestSummarizeNoContacts(t *testing.T) {
	got := newTestSummarizer().Summarize("nothing here", skills.Skills{})

	assert.NotNil(t, got.ContactInfo.Emails)
	assert.Empty(t, got.ContactInfo.Emails)
	assert.NotNil(t, got.ContactInfo.Phones)
	assert.Empty(t, got.ContactInfo.Phones)
}

func TestSummarizeSectionMentions(t *testing.T) {
	text := strings.Join([]string{
		"EDUCATION",
		"Bachelor of Science, State University",
		"Work Experience",
		"Senior position at a startup",
		"Hobbies: chess",
	}, "\n")

	got := newTestSummarizer().Summarize(text, skills.Skills{})

	assert.Equal(t, 2, got.EducationMentions)
	assert.Equal(t, 2, got.ExperienceMentions)
}

func TestSummarizeSkillCounts(t *testing.T) {
	found := skills.NewSkills(
		skills.Entry{Category: "programming", Skills: []string{"python", "java"}},
		skills.Entry{Category: taxonomy.AdditionalCategory, Skills: []string{"foo.io"}},
	)

	got := newTestSummarizer().Summarize("python java foo.io", found)

	assert.Equal(t, 3, got.TotalSkills)
	assert.Equal(t, 2, got.SkillCategories)
}

func TestSummarizeLengthAndPages(t *testing.T) {
	tests := []struct {
		length int
		pages  int
	}{
		{0, 1},
		{500, 1},
		{1999, 1},
		{4000, 2},
		{10000, 5},
	}
	for _, tt := range tests {
		got := newTestSummarizer().Summarize(strings.Repeat("x", tt.length), skills.Skills{})
		assert.Equal(t, tt.length, got.TextLength)
		assert.Equal(t, tt.pages, got.EstimatedPages, "length %d", tt.length)
	}

	// Length counts characters, not bytes.
	got := newTestSummarizer().Summarize("résumé", skills.Skills{})
	assert.Equal(t, 6, got.TextLength)
}
