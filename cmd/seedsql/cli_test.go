package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seedsql/internal/store"
)

const dataModule = `export const services: Service[] = [
  {
    slug: "web-development",
    title: "Web Development",
    subtitle: "Sites",
    icon: "Globe",
    description: ` + "`\n    It's fast.\n  `" + `,
    features: ["SEO, analytics"],
    technologies: ["Next.js"],
  },
];

export const caseStudies: CaseStudy[] = [
  { slug: "retail", title: "Retail", category: "E-commerce", results: ["+40%"] },
];
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "services-data.ts", dataModule)
	outPath := filepath.Join(dir, "seed.sql")

	_, err := run(t, "generate", "--source", src, "--mode", "ast", "--out", outPath, "--schema", "public", "--truncate=true")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	sql := string(data)

	assert.True(t, strings.HasPrefix(sql, "-- Migration SQL generated from services-data.ts\n-- run: "))
	assert.Contains(t, sql, "TRUNCATE TABLE public.services CASCADE;")
	assert.Contains(t, sql, `VALUES ('web-development', 'Web Development', 'Sites', 'Globe', 'It''s fast.', 1, '["SEO, analytics"]'::jsonb, '["Next.js"]'::jsonb`)
	assert.Contains(t, sql, `VALUES ('retail', 'Retail', 'E-commerce', '', '', '', '["+40%"]'::jsonb, NULL);`)
}

func TestGenerateCommand_RegexMode(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "services-data.ts", dataModule)

	out, err := run(t, "generate", "--source", src, "--mode", "regex", "--out", "", "--schema", "staging", "--truncate=false")
	require.NoError(t, err)

	assert.NotContains(t, out, "TRUNCATE")
	assert.Contains(t, out, "INSERT INTO staging.services (")
	assert.NotContains(t, out, "staging.case_studies")
}

func TestCheckCommand_FailsOnDuplicateSlug(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "dup.ts", `export const services: Service[] = [
  { slug: "a", title: "A", icon: "Globe", features: ["x"] },
  { slug: "a", title: "A again", icon: "Globe", features: ["y"] },
];`)

	out, err := run(t, "check", "--source", src, "--mode", "ast", "--format", "text")
	require.Error(t, err)
	assert.Contains(t, out, "duplicate slug")
	assert.Contains(t, out, "errors: 1")
}

func TestDBCommands(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "services-data.ts", dataModule)
	dbPath := filepath.Join(dir, "seed.db")

	out, err := run(t, "db", "load", "--source", src, "--mode", "ast", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "loaded 1 services, 1 case studies")

	out, err = run(t, "db", "export", "--db", dbPath, "--format", "yaml", "--out", "")
	require.NoError(t, err)
	var doc store.Export
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Services, 1)
	assert.Equal(t, "It's fast.", doc.Services[0].Description)

	out, err = run(t, "db", "history", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "services-data.ts")
}

func TestExtractCommand_Raw(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "services-data.ts", dataModule)

	out, err := run(t, "extract", "--source", src, "--name", "caseStudies", "--raw", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `slug: "retail"`)
	assert.NotContains(t, out, "web-development")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "seedsql dev\n", out)
}
