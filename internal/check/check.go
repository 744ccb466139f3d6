// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check validates extracted records before they are turned into SQL.
package check

import (
	"fmt"
	"strings"

	"github.com/pdiddy/seedsql/pkg/types"
)

// Severity ranks an Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one problem found in a record.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`

	// Array is the source array the record came from.
	Array string `json:"array" yaml:"array"`

	// Index is the zero-based position of the record in its array.
	Index   int    `json:"index" yaml:"index"`
	Slug    string `json:"slug,omitempty" yaml:"slug,omitempty"`
	Message string `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	slug := i.Slug
	if slug == "" {
		slug = "#" + fmt.Sprint(i.Index)
	}
	return fmt.Sprintf("%-7s %s[%s]: %s", i.Severity, i.Array, slug, i.Message)
}

// Report collects the issues of one check run.
type Report struct {
	Issues []Issue `json:"issues" yaml:"issues"`
}

// Errors returns the issues with error severity.
func (r Report) Errors() []Issue { return r.filter(SeverityError) }

// Warnings returns the issues with warning severity.
func (r Report) Warnings() []Issue { return r.filter(SeverityWarning) }

// HasErrors reports whether any issue has error severity.
func (r Report) HasErrors() bool { return len(r.Errors()) > 0 }

func (r Report) filter(s Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}

// Check validates services and case studies. Slugs must be present and
// unique within their array, titles must be present. Icons that look like
// image URLs and services without features are reported as warnings.
func Check(services []types.ServiceRecord, caseStudies []types.CaseStudyRecord) Report {
	var r Report

	seen := make(map[string]int)
	for i, s := range services {
		add := r.adder(types.ServicesArray, i, s.Slug)
		checkIdentity(add, seen, i, s.Slug, s.Title)

		switch {
		case s.Icon == "":
			add(SeverityWarning, "icon is empty")
		case isURL(s.Icon):
			add(SeverityWarning, "icon is a URL, expected an icon name")
		}
		if len(s.Features) == 0 {
			add(SeverityWarning, "no features")
		}
	}

	seen = make(map[string]int)
	for i, c := range caseStudies {
		add := r.adder(types.CaseStudiesArray, i, c.Slug)
		checkIdentity(add, seen, i, c.Slug, c.Title)
	}

	return r
}

type addFunc func(Severity, string)

func (r *Report) adder(array string, index int, slug string) addFunc {
	return func(sev Severity, msg string) {
		r.Issues = append(r.Issues, Issue{
			Severity: sev,
			Array:    array,
			Index:    index,
			Slug:     slug,
			Message:  msg,
		})
	}
}

func checkIdentity(add addFunc, seen map[string]int, index int, slug, title string) {
	if strings.TrimSpace(slug) == "" {
		add(SeverityError, "slug is empty")
	} else if first, ok := seen[slug]; ok {
		add(SeverityError, fmt.Sprintf("duplicate slug, first used at index %d", first))
	} else {
		seen[slug] = index
	}
	if strings.TrimSpace(title) == "" {
		add(SeverityError, "title is empty")
	}
}

func isURL(s string) bool {
	s = strings.ToLower(s)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "//")
}
