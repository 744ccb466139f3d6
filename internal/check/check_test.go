package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/seedsql/pkg/types"
)

func TestCheck_Clean(t *testing.T) {
	services := []types.ServiceRecord{
		{Slug: "web", Title: "Web", Icon: "Globe", Features: []string{"SEO"}},
		{Slug: "apps", Title: "Apps", Icon: "Smartphone", Features: []string{"iOS"}},
	}
	caseStudies := []types.CaseStudyRecord{{Slug: "web", Title: "Shared slug across arrays is fine"}}

	r := Check(services, caseStudies)
	assert.Empty(t, r.Issues)
	assert.False(t, r.HasErrors())
}

func TestCheck_Issues(t *testing.T) {
	services := []types.ServiceRecord{
		{Slug: "web", Title: "Web", Icon: "https://cdn.example.com/web.png", Features: []string{"SEO"}},
		{Slug: "", Title: "", Icon: "Globe", Features: []string{"x"}},
		{Slug: "web", Title: "Web again", Icon: "", Features: nil},
	}
	caseStudies := []types.CaseStudyRecord{
		{Slug: "retail", Title: "Retail"},
		{Slug: "retail", Title: "Retail 2"},
	}

	r := Check(services, caseStudies)

	tests := []struct {
		array    string
		index    int
		severity Severity
		message  string
	}{
		{types.ServicesArray, 0, SeverityWarning, "icon is a URL, expected an icon name"},
		{types.ServicesArray, 1, SeverityError, "slug is empty"},
		{types.ServicesArray, 1, SeverityError, "title is empty"},
		{types.ServicesArray, 2, SeverityError, "duplicate slug, first used at index 0"},
		{types.ServicesArray, 2, SeverityWarning, "icon is empty"},
		{types.ServicesArray, 2, SeverityWarning, "no features"},
		{types.CaseStudiesArray, 1, SeverityError, "duplicate slug, first used at index 0"},
	}
	require.Len(t, r.Issues, len(tests))
	for i, want := range tests {
		got := r.Issues[i]
		assert.Equal(t, want.array, got.Array, "issue %d", i)
		assert.Equal(t, want.index, got.Index, "issue %d", i)
		assert.Equal(t, want.severity, got.Severity, "issue %d", i)
		assert.Equal(t, want.message, got.Message, "issue %d", i)
	}

	assert.True(t, r.HasErrors())
	assert.Len(t, r.Errors(), 4)
	assert.Len(t, r.Warnings(), 3)
}

func TestIssue_String(t *testing.T) {
	i := Issue{Severity: SeverityError, Array: "services", Index: 3, Message: "slug is empty"}
	assert.Equal(t, "error   services[#3]: slug is empty", i.String())

	i.Slug = "web"
	assert.Equal(t, "error   services[web]: slug is empty", i.String())
}
