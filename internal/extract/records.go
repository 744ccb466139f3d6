// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"

	"github.com/pdiddy/seedsql/pkg/types"
)

// Options tunes fragment parsing.
type Options struct {
	// NaiveLists splits list bodies on every comma, including commas
	// inside quoted elements. It reproduces the output of the original
	// migration script and is wrong for elements such as "Design, build".
	NaiveLists bool
}

// recordStart marks the beginning of a service object in an array body.
var recordStart = regexp.MustCompile(`\s*\{\s*slug:`)

// A quoted string: double quotes with backslash escapes.
const quoted = `"((?:[^"\\]|\\.)*)"`

var (
	slugField        = regexp.MustCompile(`^\s*` + quoted)
	titleField       = regexp.MustCompile(`\btitle:\s*` + quoted)
	subtitleField    = regexp.MustCompile(`\bsubtitle:\s*` + quoted)
	iconField        = regexp.MustCompile(`\bicon:\s*` + quoted)
	descriptionField = regexp.MustCompile(`(?s)\bdescription:\s+` + quoted)

	featuresField     = regexp.MustCompile(`(?s)\bfeatures:\s*\[(.*?)\]`)
	technologiesField = regexp.MustCompile(`(?s)\btechnologies:\s*\[(.*?)\]`)
)

// SplitRecords splits an array body into one fragment per record. A record
// starts at each "{ slug:" token; text before the first record is dropped.
// Each fragment begins right after "slug:".
func SplitRecords(body string) []string {
	parts := recordStart.Split(body, -1)
	if len(parts) <= 1 {
		return nil
	}
	return parts[1:]
}

// ParseServiceFragment extracts the flat fields of one service fragment as
// produced by SplitRecords. Fields that cannot be found are left empty.
// Nested structures (process, faqs, ...) are not recognized.
func ParseServiceFragment(fragment string, opts Options) types.ServiceRecord {
	split := SplitList
	if opts.NaiveLists {
		split = SplitListNaive
	}

	return types.ServiceRecord{
		Slug:         stringField(slugField, fragment),
		Title:        stringField(titleField, fragment),
		Subtitle:     stringField(subtitleField, fragment),
		Icon:         stringField(iconField, fragment),
		Description:  stringField(descriptionField, fragment),
		Features:     listField(featuresField, fragment, split),
		Technologies: listField(technologiesField, fragment, split),
	}
}

// ParseServices splits body into fragments and parses each as a service.
func ParseServices(body string, opts Options) []types.ServiceRecord {
	fragments := SplitRecords(body)
	services := make([]types.ServiceRecord, 0, len(fragments))
	for _, f := range fragments {
		services = append(services, ParseServiceFragment(f, opts))
	}
	return services
}

func stringField(re *regexp.Regexp, fragment string) string {
	m := re.FindStringSubmatch(fragment)
	if m == nil {
		return ""
	}
	if s, err := Unquote(`"` + m[1] + `"`); err == nil {
		return s
	}
	return m[1]
}

func listField(re *regexp.Regexp, fragment string, split func(string) []string) []string {
	m := re.FindStringSubmatch(fragment)
	if m == nil {
		return nil
	}
	return split(m[1])
}
