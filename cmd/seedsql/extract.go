package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seedsql/internal/source"
	"github.com/pdiddy/seedsql/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the records found in the data module",
	Long: `Extract reads the data module and prints the services and case studies it
exports as YAML or JSON. Use --name to print a single array, and --raw to print
the array body exactly as the regular expression extractor sees it (after
template literals are rewritten to quoted strings).`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")
	format, _ := cmd.Flags().GetString("format")
	raw, _ := cmd.Flags().GetBool("raw")
	out := cmd.OutOrStdout()

	if raw {
		if name == "" {
			return fmt.Errorf("--raw requires --name")
		}
		body, err := source.RawArray(cfg.Source, name)
		if err != nil {
			return err
		}
		if body == "" {
			logger.Warn("array not found; nothing to print")
			return nil
		}
		_, err = fmt.Fprintln(out, body)
		return err
	}

	recs, err := source.Read(context.Background(), cfg.ExtractConfig, logger)
	if err != nil {
		return err
	}

	var doc any = recs
	switch name {
	case "":
	case types.ServicesArray:
		doc = recs.Services
	case types.CaseStudiesArray:
		doc = recs.CaseStudies
	default:
		return fmt.Errorf("unknown array %q: use %s or %s", name, types.ServicesArray, types.CaseStudiesArray)
	}
	return writeDoc(out, doc, format)
}

// writeDoc encodes doc to w as yaml or json.
func writeDoc(w io.Writer, doc any, format string) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

func init() {
	extractCmd.Flags().String("name", "", "array to print: services or caseStudies (default both)")
	extractCmd.Flags().String("format", "yaml", "output format: yaml or json")
	extractCmd.Flags().Bool("raw", false, "print the raw array body instead of parsed records")

	rootCmd.AddCommand(extractCmd)
}
