package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/seedsql/internal/check"
	"github.com/pdiddy/seedsql/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the records in the data module",
	Long: `Check extracts the records and reports problems: missing or duplicate slugs,
missing titles (errors), and icons that are URLs or empty, or services without
features (warnings). It exits non-zero when any error is found.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	recs, err := source.Read(context.Background(), cfg.ExtractConfig, logger)
	if err != nil {
		return err
	}

	report := check.Check(recs.Services, recs.CaseStudies)
	out := cmd.OutOrStdout()

	if format == "text" || format == "" {
		for _, issue := range report.Issues {
			fmt.Fprintln(out, issue)
		}
		fmt.Fprintf(out, "\nservices: %d, case studies: %d, errors: %d, warnings: %d\n",
			len(recs.Services), len(recs.CaseStudies), len(report.Errors()), len(report.Warnings()))
	} else if err := writeDoc(out, report, format); err != nil {
		return err
	}

	if report.HasErrors() {
		return fmt.Errorf("%d record error(s)", len(report.Errors()))
	}
	return nil
}

func init() {
	checkCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(checkCmd)
}
