package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/seedsql/internal/check"
	"github.com/pdiddy/seedsql/internal/source"
	"github.com/pdiddy/seedsql/internal/sqlgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the SQL seed script",
	Long: `Generate extracts the records and writes a PostgreSQL seed script: TRUNCATE
statements (unless --truncate=false), one INSERT per service with its
display_order, one INSERT per case study, and the configured clients.

Structured fields are written as JSON literals cast to jsonb. The script goes to
stdout unless --out is given. With --strict, records that fail check abort the
run before anything is written.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	strict, _ := cmd.Flags().GetBool("strict")

	recs, err := source.Read(context.Background(), cfg.ExtractConfig, logger)
	if err != nil {
		return err
	}

	report := check.Check(recs.Services, recs.CaseStudies)
	for _, issue := range report.Issues {
		logger.Warn("record issue",
			zap.String("severity", string(issue.Severity)),
			zap.String("array", issue.Array),
			zap.Int("index", issue.Index),
			zap.String("slug", issue.Slug),
			zap.String("message", issue.Message))
	}
	if strict && report.HasErrors() {
		return fmt.Errorf("%d record error(s); run seedsql check for details", len(report.Errors()))
	}

	in := sqlgen.Input{
		Source:      recs.Source,
		Services:    recs.Services,
		CaseStudies: recs.CaseStudies,
		Clients:     cfg.Clients,
	}
	opts := sqlgen.Options{
		Schema:   cfg.Schema,
		Truncate: cfg.Truncate,
		RunID:    uuid.NewString(),
	}

	var w io.Writer = cmd.OutOrStdout()
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := sqlgen.Generate(w, in, opts); err != nil {
		return err
	}

	logger.Info("generated seed script",
		zap.String("run", opts.RunID),
		zap.String("output", outputName(cfg.Output)),
		zap.Int("services", len(in.Services)),
		zap.Int("case_studies", len(in.CaseStudies)),
		zap.Int("clients", len(in.Clients)))

	if len(in.Services) == 0 && len(in.CaseStudies) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: no records found; the script only contains the header")
	}
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

func init() {
	generateCmd.Flags().StringP("out", "o", "", "write the script to this file instead of stdout")
	generateCmd.Flags().String("schema", "", "schema prefix for table names (default public)")
	generateCmd.Flags().Bool("truncate", true, "emit TRUNCATE statements before the inserts")
	generateCmd.Flags().Bool("strict", false, "fail when check reports errors")

	bindFlags(generateCmd.Flags(), map[string]string{
		keyOutput:   "out",
		keySchema:   "schema",
		keyTruncate: "truncate",
	})

	rootCmd.AddCommand(generateCmd)
}
