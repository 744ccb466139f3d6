// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the seedsql CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE; it discards output until then.
var logger = zap.NewNop()

// rootCmd is the base command for the seedsql CLI.
var rootCmd = &cobra.Command{
	Use:   "seedsql",
	Short: "Turn TypeScript service data into SQL seed scripts",
	Long: `seedsql reads a TypeScript data module that exports arrays of service and
case-study records (by default src/lib/services-data.ts), extracts the records,
and writes SQL insert statements for them.

Records are extracted from a Tree-sitter syntax tree (--mode ast, the default)
or with the legacy regular expressions (--mode regex). Use check to validate
the records, generate to write the seed script, and db to keep a local SQLite
copy for inspection.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./seedsql.yaml or ~/.config/seedsql/seedsql.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("source", "", "TypeScript data module to read (default "+defaultSource+")")
	rootCmd.PersistentFlags().String("mode", "", "extraction mode: ast or regex (default ast)")
	rootCmd.PersistentFlags().Bool("naive-lists", false, "regex mode: split list elements on every comma")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		keySource:     "source",
		keyMode:       "mode",
		keyNaiveLists: "naive-lists",
	})
	setDefaults()
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("seedsql")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "seedsql"))
		}
	}

	viper.SetEnvPrefix("SEEDSQL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
