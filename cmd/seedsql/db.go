// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/seedsql/internal/source"
	"github.com/pdiddy/seedsql/internal/store"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the local SQLite copy of the records (load, export, history)",
	Long: `Db keeps the extracted records in a local SQLite database so a seed can be
inspected and exported without a PostgreSQL server. Use subcommands to load
records, export them, or list previous loads.`,
}

// --- load subcommand ---

var dbLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Replace the database contents with the extracted records",
	RunE:  runDBLoad,
}

func runDBLoad(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	recs, err := source.Read(context.Background(), cfg.ExtractConfig, logger)
	if err != nil {
		return err
	}

	s, err := store.NewStore(cfg.StoreConfig, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.Load(context.Background(), store.LoadInput{
		RunID:       uuid.NewString(),
		Source:      recs.Source,
		Services:    recs.Services,
		CaseStudies: recs.CaseStudies,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "loaded %d services, %d case studies (run %s)\n",
		summary.Services, summary.CaseStudies, summary.RunID)
	return nil
}

// --- export subcommand ---

var dbExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the database contents to YAML or JSON",
	RunE:  runDBExport,
}

func runDBExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	s, err := store.NewStore(cfg.StoreConfig, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "yaml", "":
		return s.ExportYAML(context.Background(), w)
	case "json":
		return s.ExportJSON(context.Background(), w)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// --- history subcommand ---

var dbHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous loads",
	RunE:  runDBHistory,
}

func runDBHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := store.NewStore(cfg.StoreConfig, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	loads, err := s.Loads(context.Background())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(loads) == 0 {
		fmt.Fprintln(out, "No loads recorded.")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-20s  %-8s  %-12s  %s\n", "Run", "Loaded", "Services", "Case studies", "Source")
	fmt.Fprintln(out, strings.Repeat("-", 100))
	for _, l := range loads {
		fmt.Fprintf(out, "%-36s  %-20s  %-8d  %-12d  %s\n",
			l.ID, l.LoadedAt.Format("2006-01-02 15:04:05"), l.Services, l.CaseStudies, l.Source)
	}
	return nil
}

func init() {
	dbCmd.PersistentFlags().String("db", "", "SQLite database file (default "+store.DefaultDBPath+")")
	bindFlags(dbCmd.PersistentFlags(), map[string]string{keyDB: "db"})

	dbExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	dbExportCmd.Flags().StringP("out", "o", "", "write the export to this file instead of stdout")

	dbCmd.AddCommand(dbLoadCmd)
	dbCmd.AddCommand(dbExportCmd)
	dbCmd.AddCommand(dbHistoryCmd)

	rootCmd.AddCommand(dbCmd)
}
