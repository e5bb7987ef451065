package skills

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scanner/internal/taxonomy"
)

const sampleResume = `
John Doe
Senior Software Engineer
john.doe@email.com

SKILLS:
- Programming: Python, JavaScript, Java, TypeScript
- Web Development: React.js, Node.js, Django, Express, HTML5, CSS3
- Databases: MySQL, PostgreSQL, MongoDB, Redis
- Cloud & DevOps: AWS, Docker, Kubernetes, Git, Jenkins, Terraform
- Data Science: Pandas, NumPy, Scikit-learn
- Mobile: React Native, Flutter
- Project Management: Agile, Scrum, Jira
- Soft Skills: Leadership, Communication, Problem Solving
`

type recordingAnnotator struct {
	seen []string
	out  []string
}

func (r *recordingAnnotator) Annotate(text string) []string {
	r.seen = append(r.seen, text)
	return r.out
}

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(taxonomy.MustDefault(), nil)
}

func TestExtractHighOverlapExample(t *testing.T) {
	ex := newTestExtractor(t)

	got := ex.Extract("Python, JavaScript, React.js, MySQL, AWS, Docker, Agile, Leadership").Skills

	assert.Contains(t, got.Get("programming"), "python")
	assert.Contains(t, got.Get("programming"), "javascript")
	assert.Contains(t, got.Get("web_development"), "react")
	assert.Contains(t, got.Get("databases"), "mysql")
	assert.Contains(t, got.Get("cloud"), "aws")
	assert.Contains(t, got.Get("cloud"), "docker")
	assert.Contains(t, got.Get("project_management"), "agile")
	assert.Contains(t, got.Get("soft_skills"), "leadership")
	assert.Nil(t, got.Get("languages"))
	assert.NotContains(t, got.Categories(), "languages")
}

func TestExtractCategoryOrderFollowsTaxonomy(t *testing.T) {
	ex := newTestExtractor(t)

	got := ex.Extract(sampleResume).Skills
	cats := got.Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "programming", cats[0])

	order := map[string]int{}
	for i, c := range taxonomy.MustDefault().Categories() {
		order[c.Name] = i
	}
	for i := 1; i < len(cats); i++ {
		if cats[i] == taxonomy.AdditionalCategory {
			assert.Equal(t, len(cats)-1, i)
			continue
		}
		assert.Less(t, order[cats[i-1]], order[cats[i]])
	}
}

func TestExtractResolvesCanonicalNames(t *testing.T) {
	tax := taxonomy.MustDefault()
	ex := NewExtractor(tax, nil)

	got := ex.Extract(sampleResume + "\nAlso: k8s, sklearn, Postgres, GCP, Mongo").Skills
	for _, e := range got.Entries() {
		seen := map[string]bool{}
		for _, s := range e.Skills {
			assert.False(t, seen[s], "duplicate %q in %s", s, e.Category)
			seen[s] = true
			if e.Category == taxonomy.AdditionalCategory {
				continue
			}
			if tax.HasMapping(s) {
				assert.Equal(t, s, tax.Canonical(s), "raw alias %q in %s", s, e.Category)
			}
		}
	}
	assert.Contains(t, got.Get("cloud"), "kubernetes")
	assert.NotContains(t, got.Get("cloud"), "k8s")
	assert.Contains(t, got.Get("data_science"), "scikit-learn")
	assert.NotContains(t, got.Get("data_science"), "sklearn")
	assert.Contains(t, got.Get("databases"), "postgresql")
	assert.NotContains(t, got.Get("databases"), "postgres")
}

func TestExtractAdditionalTechnicalTerms(t *testing.T) {
	ex := newTestExtractor(t)

	got := ex.Extract("Ran setup.sh, edited config.yml and deploy.yaml, hosted on foo.io. Used Express.js.").Skills

	assert.Equal(t, []string{"config.yml", "deploy.yaml", "foo.io", "setup.sh"}, got.Get(taxonomy.AdditionalCategory))
	// ".js" tokens were already rewritten to ".javascript" by the synonym pass.
	assert.Contains(t, got.Get("web_development"), "express")
	assert.Equal(t, taxonomy.AdditionalCategory, got.Categories()[got.Len()-1])
}

func TestExtractTechnicalTermsRespectUnicodeWords(t *testing.T) {
	ex := newTestExtractor(t)

	got := ex.Extract("éfoo.io and barñ.com, naïve.sh").Skills
	assert.Empty(t, got.Get(taxonomy.AdditionalCategory))
	assert.Equal(t, []string{"r"}, got.Get("data_science"))

	got = ex.Extract("café app.io and docs.sh").Skills
	assert.Equal(t, []string{"app.io", "docs.sh"}, got.Get(taxonomy.AdditionalCategory))
}

func TestSuffixedWords(t *testing.T) {
	assert.Equal(t, []string{"a.io", "b.io"}, suffixedWords("a.io.io b.io", ".io"))
	assert.Nil(t, suffixedWords("asp.network", ".net"))
	assert.Nil(t, suffixedWords("d3.io x.ioé", ".io"))
	assert.Equal(t, []string{"foo.io"}, suffixedWords("(foo.io)", ".io"))
}

func TestExtractEmptyText(t *testing.T) {
	ex := newTestExtractor(t)

	got := ex.Extract("")
	assert.True(t, got.Skills.IsEmpty())
	assert.Equal(t, 0, got.Skills.Total())
	assert.Empty(t, got.Candidates)
	assert.Equal(t, "", got.Normalized)
}

func TestExtractAnnotatesCleanedText(t *testing.T) {
	ann := &recordingAnnotator{out: []string{"engineer"}}
	ex := NewExtractor(taxonomy.MustDefault(), ann)

	got := ex.Extract("Engineer, React.js!")

	require.Len(t, ann.seen, 1)
	assert.Equal(t, "engineer react.js", ann.seen[0])
	assert.Equal(t, []string{"engineer"}, got.Candidates)
	assert.Equal(t, "engineer react.javascript", got.Normalized)
}

func TestExtractIsUnaffectedByCandidates(t *testing.T) {
	plain := NewExtractor(taxonomy.MustDefault(), nil).Extract(sampleResume).Skills
	annotated := NewExtractor(taxonomy.MustDefault(), &recordingAnnotator{out: []string{"python", "zzz"}}).Extract(sampleResume).Skills

	assert.Equal(t, plain.Entries(), annotated.Entries())
}

func TestProseAnnotatorFindsNouns(t *testing.T) {
	ann, err := NewProseAnnotator()
	require.NoError(t, err)
	got := ann.Annotate("the engineer designed a database for the company")

	assert.NotEmpty(t, got)
	assert.Subset(t, []string{"engineer", "database", "company"}, got[:1])
	assert.Nil(t, ann.Annotate("   "))
}

func TestProseAnnotatorReusesModel(t *testing.T) {
	ann, err := NewProseAnnotator()
	require.NoError(t, err)
	model := ann.model
	require.NotNil(t, model)

	first := ann.Annotate("the engineer designed a database for the company")
	second := ann.Annotate("the engineer designed a database for the company")

	assert.Same(t, model, ann.model)
	assert.Equal(t, first, second)
}

func TestSkillsJSONKeepsOrder(t *testing.T) {
	s := NewSkills(
		Entry{Category: "web_development", Skills: []string{"react"}},
		Entry{Category: "empty"},
		Entry{Category: "programming", Skills: []string{"python", "go"}},
	)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"web_development":["react"],"programming":["python","go"]}`, string(data))
	assert.Equal(t, `{"web_development":["react"],"programming":["python","go"]}`, string(data))

	var back Skills
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"web_development", "programming"}, back.Categories())
	assert.Equal(t, 3, back.Total())
	assert.Equal(t, []string{"react", "python", "go"}, back.All())

	empty, err := json.Marshal(Skills{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(empty))
}
