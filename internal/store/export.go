// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seedsql/pkg/types"
)

// Export is the document written by ExportYAML and ExportJSON.
type Export struct {
	Services    []types.ServiceRecord   `json:"services" yaml:"services"`
	CaseStudies []types.CaseStudyRecord `json:"case_studies" yaml:"case_studies"`
}

// ExportYAML writes all records to w as YAML.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	doc, err := s.export(ctx)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes all records to w as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	doc, err := s.export(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

func (s *Store) export(ctx context.Context) (Export, error) {
	services, err := s.Services(ctx)
	if err != nil {
		return Export{}, fmt.Errorf("querying for export: %w", err)
	}
	caseStudies, err := s.CaseStudies(ctx)
	if err != nil {
		return Export{}, fmt.Errorf("querying for export: %w", err)
	}
	return Export{Services: services, CaseStudies: caseStudies}, nil
}
