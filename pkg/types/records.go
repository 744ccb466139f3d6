// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Step is one entry of a service's process, pain points, or benefits list.
type Step struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`

	// Icon is an optional icon name rendered next to the step.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Solution describes how a service addresses a pain point.
type Solution struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Features    []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// FAQ is a question and answer pair shown on a service page.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Metric is a single headline number of a case study result.
type Metric struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// CaseStudyResult summarizes an engagement attached to a service.
type CaseStudyResult struct {
	Title    string   `json:"title" yaml:"title"`
	Industry string   `json:"industry" yaml:"industry"`
	Metrics  []Metric `json:"metrics" yaml:"metrics"`
}

// ServiceRecord is one element of the exported services array.
// JSON keys follow the camelCase names used in the TypeScript source.
type ServiceRecord struct {
	// Slug is the URL identifier of the service. Expected to be unique
	// but not enforced during extraction.
	Slug     string `json:"slug" yaml:"slug"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`

	// Icon is the name of an icon component (e.g. "Globe").
	Icon string `json:"icon" yaml:"icon"`

	// Description may span several lines in the source.
	Description  string   `json:"description" yaml:"description"`
	Features     []string `json:"features" yaml:"features"`
	Technologies []string `json:"technologies" yaml:"technologies"`

	Process          []Step            `json:"process,omitempty" yaml:"process,omitempty"`
	PainPoints       []Step            `json:"painPoints,omitempty" yaml:"pain_points,omitempty"`
	Solutions        []Solution        `json:"solutions,omitempty" yaml:"solutions,omitempty"`
	Benefits         []Step            `json:"benefits,omitempty" yaml:"benefits,omitempty"`
	FAQs             []FAQ             `json:"faqs,omitempty" yaml:"faqs,omitempty"`
	CaseStudyResults []CaseStudyResult `json:"caseStudyResults,omitempty" yaml:"case_study_results,omitempty"`
}

// CaseStudyRecord is one element of the exported caseStudies array.
type CaseStudyRecord struct {
	Slug         string   `json:"slug" yaml:"slug"`
	Title        string   `json:"title" yaml:"title"`
	Category     string   `json:"category" yaml:"category"`
	Description  string   `json:"description" yaml:"description"`
	Challenge    string   `json:"challenge" yaml:"challenge"`
	Solution     string   `json:"solution" yaml:"solution"`
	Results      []string `json:"results" yaml:"results"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

// Client is a logo shown in the client strip. Clients are not part of the
// source file; they come from configuration.
type Client struct {
	Name    string `json:"name" yaml:"name" mapstructure:"name"`
	LogoURL string `json:"logo_url" yaml:"logo_url" mapstructure:"logo_url"`
}
