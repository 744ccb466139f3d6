package types

// ExtractMode selects how records are pulled out of the source file.
type ExtractMode string

const (
	// ModeAST evaluates the array literal from a TypeScript syntax tree.
	ModeAST ExtractMode = "ast"

	// ModeRegex splits the array body with regular expressions. It only
	// understands services and loses nested fields.
	ModeRegex ExtractMode = "regex"
)

// Default array names in the services data module.
const (
	ServicesArray    = "services"
	CaseStudiesArray = "caseStudies"
)

// DefaultSource is the data module read when no source is configured.
const DefaultSource = "src/lib/services-data.ts"

// ExtractConfig holds settings for reading the source file.
type ExtractConfig struct {
	// Source is the path of the TypeScript data module.
	Source string `json:"source" yaml:"source" mapstructure:"source"`

	// Mode selects ast or regex extraction (default ast).
	Mode ExtractMode `json:"mode" yaml:"mode" mapstructure:"mode"`

	// NaiveLists reproduces the comma split that breaks quoted list
	// elements containing commas. Regex mode only.
	NaiveLists bool `json:"naive_lists" yaml:"naive_lists" mapstructure:"naive_lists"`
}

// GenerateConfig holds settings for the SQL script.
type GenerateConfig struct {
	// Schema prefixes every table name (default "public").
	Schema string `json:"schema" yaml:"schema" mapstructure:"schema"`

	// Truncate emits TRUNCATE statements before the inserts (default true).
	Truncate bool `json:"truncate" yaml:"truncate" mapstructure:"truncate"`

	// Output is the destination file. Empty writes to stdout.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Clients are inserted into the clients table after the records.
	Clients []Client `json:"clients" yaml:"clients" mapstructure:"clients"`
}

// StoreConfig holds settings for the local SQLite database.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "seed.db").
	DBPath string `json:"db" yaml:"db" mapstructure:"db"`
}

// Config groups all settings read from seedsql.yaml.
type Config struct {
	ExtractConfig  `yaml:",inline" mapstructure:",squash"`
	GenerateConfig `yaml:",inline" mapstructure:",squash"`
	StoreConfig    `yaml:",inline" mapstructure:",squash"`
}
