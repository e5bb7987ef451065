package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-scanner/internal/taxonomy"
)

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Hello,   World!", "hello world"},
		{"C++/C# & .NET", "c c .net"},
		{"node.js\tand\nscikit-learn", "node.js and scikit-learn"},
		{"snake_case_name", "snake_case_name"},
		{"Café — Résumé", "café résumé"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clean(tt.in), tt.in)
	}
}

func TestNormalizeAppliesSynonymsInOrder(t *testing.T) {
	n := NewNormalizer(taxonomy.MustDefault())

	// "js" is rewritten before the "react.js" pair is reached.
	assert.Equal(t, "react.javascript", n.Normalize("React.js"))
	assert.Equal(t, "kubernetes and google cloud", n.Normalize("K8s and GCP"))
	assert.Equal(t, "mysql", n.Normalize("MariaDB"))
	// "adobexd" becomes "adobe xd", which the later "xd" pair rewrites again.
	assert.Equal(t, "adobe adobe xd", n.Normalize("AdobeXD"))
}

func TestNormalizeRewritesInsideWords(t *testing.T) {
	n := NewNormalizer(taxonomy.MustDefault())

	assert.Equal(t, "productypescript", n.Normalize("Products"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := NewNormalizer(taxonomy.MustDefault())

	inputs := []string{
		"",
		"Senior Python Developer; 5+ yrs AWS & Docker.",
		"  Leadership,\tCommunication \n and Agile  ",
		"Built dashboards with Grafana and Prometheus",
		"JS / TS / K8s",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), in)
	}
}

func TestNormalizeSelfExpandingSynonyms(t *testing.T) {
	n := NewNormalizer(taxonomy.MustDefault())

	// Canonical forms that contain their own alias grow on every pass.
	once := n.Normalize("postgres")
	assert.Equal(t, "postgresql", once)
	assert.Equal(t, "postgresqlql", n.Normalize(once))
}
