package extract

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/seedsql/pkg/types"
)

const servicesModule = `import { Service, CaseStudy } from "./types";

// Marketing services shown on /services.
export const services: Service[] = [
  {
    slug: "web-development",
    title: "Web Development",
    subtitle: "Fast, accessible sites",
    icon: "Globe",
    description: ` + "`" + `
      We build modern web applications.
      Shipped weekly.
    ` + "`" + `,
    features: ["Responsive design", "SEO, analytics, and tracking", "CMS integration"],
    technologies: ["Next.js", "TypeScript"],
    process: [
      { title: "Discovery", description: "Workshops" },
    ],
  },
  {
    slug: "data-analytics",
    title: "Data Analytics",
    subtitle: "Decisions from data",
    icon: "BarChart",
    description: "Dashboards and pipelines.",
    features: [],
    technologies: ["Python", "dbt"],
  },
];

export const caseStudies: CaseStudy[] = [
  { slug: "retail", title: "Retail Revamp", results: ["+40% sales"] },
];
`

// --- ExtractArray ---

func TestExtractArray_SimpleBody(t *testing.T) {
	content := `export const services: Foo[] = [ {a:1}, {b:2} ];`
	got := ExtractArray(content, "services")
	assert.Equal(t, "{a:1}, {b:2}", strings.TrimSpace(got))
}

func TestExtractArray_MissingNameReturnsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
		array   string
	}{
		{name: "unknown name", content: `export const services: Foo[] = [ {a:1} ];`, array: "caseStudies"},
		{name: "not exported", content: `const services: Foo[] = [ {a:1} ];`, array: "services"},
		{name: "no type annotation", content: `export const services = [ {a:1} ];`, array: "services"},
		{name: "empty input", content: "", array: "services"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, ExtractArray(tc.content, tc.array))
		})
	}
}

func TestExtractArray_NameIsLiteral(t *testing.T) {
	content := `export const servicesX: Foo[] = [ 1 ];`
	assert.Empty(t, ExtractArray(content, "services"))
	assert.Empty(t, ExtractArray(content, "service."))
}

func TestExtractArray_PicksNamedArray(t *testing.T) {
	body := ExtractArray(servicesModule, "caseStudies")
	assert.Contains(t, body, `slug: "retail"`)
	assert.NotContains(t, body, "web-development")

	body = ExtractArray(servicesModule, "services")
	assert.Contains(t, body, `slug: "web-development"`)
	assert.Contains(t, body, `slug: "data-analytics"`)
	assert.NotContains(t, body, "retail")
}

func TestExtractArray_RewritesTemplateLiteralsInBody(t *testing.T) {
	body := ExtractArray(servicesModule, "services")
	assert.NotContains(t, body, "`")
	assert.Contains(t, body, `description: "We build modern web applications.\n      Shipped weekly."`)
}

// --- RewriteTemplateLiterals ---

func TestRewriteTemplateLiterals(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "multi-line literal is trimmed and quoted",
			in:   "`line one\n  line two  `",
			want: `"line one\n  line two"`,
		},
		{
			name: "control characters escaped",
			in:   "x = `a\tb`;",
			want: `x = "a\tb";`,
		},
		{
			name: "embedded double quote escaped",
			in:   "`say \"hi\"`",
			want: `"say \"hi\""`,
		},
		{
			name: "html characters kept",
			in:   "`<b>&</b>`",
			want: `"<b>&</b>"`,
		},
		{
			name: "several literals",
			in:   "[`a`, ` b `]",
			want: `["a", "b"]`,
		},
		{
			name: "no literals",
			in:   `const x = "plain";`,
			want: `const x = "plain";`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RewriteTemplateLiterals(tc.in))
		})
	}
}

func TestRewriteTemplateLiterals_AppliesOutsideArray(t *testing.T) {
	content := "const note = `  outside  `;\nexport const services: S[] = [ `inside` ];"
	assert.Equal(t, `"inside"`, strings.TrimSpace(ExtractArray(content, "services")))
	assert.Contains(t, RewriteTemplateLiterals(content), `const note = "outside";`)
}

// --- SplitRecords ---

func TestSplitRecords(t *testing.T) {
	body := `
  // leading comment
  { slug: "one", title: "One" },
  {
    slug: "two", title: "Two" },
`
	frags := SplitRecords(body)
	require.Len(t, frags, 2)
	assert.True(t, strings.HasPrefix(frags[0], ` "one"`))
	assert.True(t, strings.HasPrefix(frags[1], ` "two"`))
	for _, f := range frags {
		assert.NotContains(t, f, "leading comment")
	}
}

func TestSplitRecords_NoRecords(t *testing.T) {
	assert.Empty(t, SplitRecords(""))
	assert.Empty(t, SplitRecords(`{ name: "x" }`))
}

// --- ParseServiceFragment ---

func TestParseServiceFragment(t *testing.T) {
	body := ExtractArray(servicesModule, "services")
	frags := SplitRecords(body)
	require.Len(t, frags, 2)

	got := ParseServiceFragment(frags[0], Options{})
	want := types.ServiceRecord{
		Slug:         "web-development",
		Title:        "Web Development",
		Subtitle:     "Fast, accessible sites",
		Icon:         "Globe",
		Description:  "We build modern web applications.\n      Shipped weekly.",
		Features:     []string{"Responsive design", "SEO, analytics, and tracking", "CMS integration"},
		Technologies: []string{"Next.js", "TypeScript"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseServiceFragment mismatch (-want +got):\n%s", diff)
	}
}

func TestParseServiceFragment_NaiveLists(t *testing.T) {
	frags := SplitRecords(ExtractArray(servicesModule, "services"))
	require.NotEmpty(t, frags)

	got := ParseServiceFragment(frags[0], Options{NaiveLists: true})
	assert.Equal(t,
		[]string{"Responsive design", "SEO", "analytics", "and tracking", "CMS integration"},
		got.Features)
}

func TestParseServiceFragment_MissingFields(t *testing.T) {
	got := ParseServiceFragment(` "bare" }`, Options{})
	assert.Equal(t, "bare", got.Slug)
	assert.Empty(t, got.Title)
	assert.Empty(t, got.Subtitle)
	assert.Empty(t, got.Icon)
	assert.Empty(t, got.Description)
	assert.Nil(t, got.Features)
	assert.Nil(t, got.Technologies)
}

func TestParseServiceFragment_TitleDoesNotMatchSubtitle(t *testing.T) {
	got := ParseServiceFragment(` "x", subtitle: "Sub", title: "Main"`, Options{})
	assert.Equal(t, "Main", got.Title)
	assert.Equal(t, "Sub", got.Subtitle)
}

func TestParseServices(t *testing.T) {
	got := ParseServices(ExtractArray(servicesModule, "services"), Options{})
	require.Len(t, got, 2)
	assert.Equal(t, "data-analytics", got[1].Slug)
	assert.Equal(t, "BarChart", got[1].Icon)
	assert.Empty(t, got[1].Features)
	assert.Equal(t, []string{"Python", "dbt"}, got[1].Technologies)

	assert.Empty(t, ParseServices("", Options{}))
}
