package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/seedsql/internal/sqlgen"
	"github.com/pdiddy/seedsql/internal/store"
	"github.com/pdiddy/seedsql/pkg/types"
)

// Viper keys. They match the mapstructure tags of types.Config.
const (
	keySource     = "source"
	keyMode       = "mode"
	keyNaiveLists = "naive_lists"
	keySchema     = "schema"
	keyTruncate   = "truncate"
	keyOutput     = "output"
	keyClients    = "clients"
	keyDB         = "db"
)

const defaultSource = types.DefaultSource

func setDefaults() {
	viper.SetDefault(keySource, defaultSource)
	viper.SetDefault(keyMode, string(types.ModeAST))
	viper.SetDefault(keySchema, sqlgen.DefaultSchema)
	viper.SetDefault(keyTruncate, true)
	viper.SetDefault(keyDB, store.DefaultDBPath)
}

// bindFlags binds each viper key to the named flag in fs.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

// loadConfig merges defaults, config file, environment, and flags.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	switch cfg.Mode {
	case types.ModeAST, types.ModeRegex:
	default:
		return types.Config{}, fmt.Errorf("unsupported mode %q: use ast or regex", cfg.Mode)
	}
	return cfg, nil
}
