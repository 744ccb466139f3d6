// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sqlgen

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/seedsql/pkg/types"
)

// DefaultSchema is the schema that prefixes table names.
const DefaultSchema = "public"

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var serviceColumns = []string{
	"slug", "title", "subtitle", "icon", "description", "display_order",
	"features", "technologies", "process", "pain_points", "solutions",
	"benefits", "faqs", "case_study_results",
}

var caseStudyColumns = []string{
	"slug", "title", "category", "description", "challenge", "solution",
	"results", "technologies",
}

// Input is the data rendered into one script.
type Input struct {
	// Source names the file the records came from. Only its base name
	// appears in the header.
	Source      string
	Services    []types.ServiceRecord
	CaseStudies []types.CaseStudyRecord
	Clients     []types.Client
}

// Options controls script layout.
type Options struct {
	// Schema prefixes every table. Empty means DefaultSchema.
	Schema string

	// Truncate clears services and case_studies before inserting.
	Truncate bool

	// RunID is written to the header when set.
	RunID string
}

// Generate writes the seed script for in to w. Services get a display_order
// equal to their 1-based position in the source array.
func Generate(w io.Writer, in Input, opts Options) error {
	schema := opts.Schema
	if schema == "" {
		schema = DefaultSchema
	}
	if !identifier.MatchString(schema) {
		return fmt.Errorf("invalid schema name %q", schema)
	}

	var b strings.Builder

	source := "unknown source"
	if in.Source != "" {
		source = filepath.Base(in.Source)
	}
	fmt.Fprintf(&b, "-- Migration SQL generated from %s\n", source)
	if opts.RunID != "" {
		fmt.Fprintf(&b, "-- run: %s\n", opts.RunID)
	}
	b.WriteString("\n")

	if opts.Truncate {
		fmt.Fprintf(&b, "TRUNCATE TABLE %s.services CASCADE;\n", schema)
		fmt.Fprintf(&b, "TRUNCATE TABLE %s.case_studies CASCADE;\n\n", schema)
	}

	for i, s := range in.Services {
		values, err := serviceValues(s, i+1)
		if err != nil {
			return fmt.Errorf("service %q: %w", s.Slug, err)
		}
		writeInsert(&b, schema+".services", serviceColumns, values)
	}

	for _, c := range in.CaseStudies {
		values, err := caseStudyValues(c)
		if err != nil {
			return fmt.Errorf("case study %q: %w", c.Slug, err)
		}
		writeInsert(&b, schema+".case_studies", caseStudyColumns, values)
	}

	if len(in.Clients) > 0 {
		fmt.Fprintf(&b, "INSERT INTO %s.clients (name, logo_url) VALUES\n", schema)
		for i, c := range in.Clients {
			sep := ",\n"
			if i == len(in.Clients)-1 {
				sep = ";\n"
			}
			fmt.Fprintf(&b, "(%s, %s)%s", quoteLiteral(c.Name), quoteLiteral(c.LogoURL), sep)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeInsert(b *strings.Builder, table string, columns, values []string) {
	fmt.Fprintf(b, "INSERT INTO %s (%s)\n", table, strings.Join(columns, ", "))
	fmt.Fprintf(b, "VALUES (%s);\n\n", strings.Join(values, ", "))
}

func serviceValues(s types.ServiceRecord, order int) ([]string, error) {
	return renderValues(
		s.Slug, s.Title, s.Subtitle, s.Icon, s.Description, rawInt(order),
		s.Features, s.Technologies, s.Process, s.PainPoints, s.Solutions,
		s.Benefits, s.FAQs, s.CaseStudyResults,
	)
}

func caseStudyValues(c types.CaseStudyRecord) ([]string, error) {
	return renderValues(
		c.Slug, c.Title, c.Category, c.Description, c.Challenge, c.Solution,
		c.Results, c.Technologies,
	)
}

// rawInt is rendered without quotes.
type rawInt int

func renderValues(vals ...any) ([]string, error) {
	out := make([]string, len(vals))
	for i, v := range vals {
		if n, ok := v.(rawInt); ok {
			out[i] = fmt.Sprint(int(n))
			continue
		}
		s, err := SQLValue(v)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
