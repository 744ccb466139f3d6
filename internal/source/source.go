// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source reads a TypeScript data module and returns its records
// using the configured extraction mode.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pdiddy/seedsql/internal/extract"
	"github.com/pdiddy/seedsql/internal/tsdata"
	"github.com/pdiddy/seedsql/pkg/types"
)

// Records holds everything extracted from one source file.
type Records struct {
	Source      string                  `json:"source" yaml:"source"`
	Mode        types.ExtractMode       `json:"mode" yaml:"mode"`
	Services    []types.ServiceRecord   `json:"services" yaml:"services"`
	CaseStudies []types.CaseStudyRecord `json:"case_studies" yaml:"case_studies"`
}

// Read loads cfg.Source and extracts services and case studies. A missing
// array is logged and yields no records; a missing file is an error.
func Read(ctx context.Context, cfg types.ExtractConfig, logger *zap.Logger) (*Records, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	path := cfg.Source
	if path == "" {
		path = types.DefaultSource
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source %s: %w", path, err)
	}

	mode := cfg.Mode
	if mode == "" {
		mode = types.ModeAST
	}
	logger = logger.With(zap.String("source", path), zap.String("mode", string(mode)))

	recs := &Records{Source: path, Mode: mode}
	switch mode {
	case types.ModeRegex:
		recs.Services = readRegex(content, cfg.NaiveLists, logger)
	case types.ModeAST:
		if err := readAST(ctx, content, recs, logger); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown extraction mode %q: use ast or regex", mode)
	}

	logger.Debug("extracted records",
		zap.Int("services", len(recs.Services)),
		zap.Int("case_studies", len(recs.CaseStudies)))
	return recs, nil
}

// RawArray returns the raw body of the named array in the file at path,
// after template literal rewriting.
func RawArray(path, name string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading source %s: %w", path, err)
	}
	return extract.ExtractArray(string(content), name), nil
}

func readRegex(content []byte, naive bool, logger *zap.Logger) []types.ServiceRecord {
	body := extract.ExtractArray(string(content), types.ServicesArray)
	if body == "" {
		logger.Warn("array not found", zap.String("array", types.ServicesArray))
		return nil
	}
	logger.Info("regex mode extracts flat service fields only; case studies are skipped")
	return extract.ParseServices(body, extract.Options{NaiveLists: naive})
}

func readAST(ctx context.Context, content []byte, recs *Records, logger *zap.Logger) error {
	f, err := tsdata.NewDecoder(logger).Parse(ctx, content)
	if err != nil {
		return err
	}
	defer f.Close()

	recs.Services, err = f.Services(types.ServicesArray)
	if err = missingOK(err, types.ServicesArray, logger); err != nil {
		return err
	}
	recs.CaseStudies, err = f.CaseStudies(types.CaseStudiesArray)
	return missingOK(err, types.CaseStudiesArray, logger)
}

func missingOK(err error, array string, logger *zap.Logger) error {
	if errors.Is(err, tsdata.ErrArrayNotFound) {
		logger.Warn("array not found", zap.String("array", array))
		return nil
	}
	return err
}
