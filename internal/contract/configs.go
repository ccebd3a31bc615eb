package contract

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// Default values for configuration.
const (
	DefaultTopLimit = 10
	MaxTopLimit     = 100
)

// DefaultWorkers is the default number of concurrent repository scans.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	RepoSpecs []string
	Since     time.Time
	SinceRaw  string

	JSONPath    string
	CSVPath     string
	ParquetPath string
	Summary     bool

	TopLimit  int
	Workers   int
	UseColors bool

	RunBackend   schema.DatabaseBackend
	RunDBConnect string // Please use env var as this is plaintext
}

// WantsOutput reports whether any export or summary form was requested.
func (c *Config) WantsOutput() bool {
	return c.JSONPath != "" || c.CSVPath != "" || c.ParquetPath != "" || c.Summary
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.RepoSpecs != nil {
		clone.RepoSpecs = make([]string, len(c.RepoSpecs))
		copy(clone.RepoSpecs, c.RepoSpecs)
	}
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoSpecs []string

	// --- Fields from rootCmd.PersistentFlags() ---
	Workers      int    `mapstructure:"workers"`
	Limit        int    `mapstructure:"limit"`
	Color        string `mapstructure:"color"`
	RunBackend   string `mapstructure:"run-backend"`
	RunDBConnect string `mapstructure:"run-db-connect"`

	// --- Fields from analyzeCmd.Flags() ---
	Since       string `mapstructure:"since"`
	JSONPath    string `mapstructure:"json"`
	CSVPath     string `mapstructure:"csv"`
	ParquetPath string `mapstructure:"parquet"`
	Summary     bool   `mapstructure:"summary"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSince(cfg, input, now); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-time related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.RepoSpecs = input.RepoSpecs
	cfg.JSONPath = input.JSONPath
	cfg.CSVPath = input.CSVPath
	cfg.ParquetPath = input.ParquetPath
	cfg.Summary = input.Summary

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. TopLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxTopLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxTopLimit, input.Limit)
	}
	cfg.TopLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// When no export or summary form is requested, the summary prints.
	if !cfg.WantsOutput() {
		cfg.Summary = true
	}

	return nil
}

// processSince handles the history cutoff parsing.
func processSince(cfg *Config, input *ConfigRawInput, now time.Time) error {
	cfg.SinceRaw = strings.TrimSpace(input.Since)
	if cfg.SinceRaw == "" {
		cfg.Since = time.Time{}
		return nil
	}

	t, err := ParseSinceTime(cfg.SinceRaw, now)
	if err != nil {
		return fmt.Errorf("invalid --since value '%s'. Expected absolute ISO8601 or 'N [units] ago': %w", cfg.SinceRaw, err)
	}
	cfg.Since = t
	return nil
}

// validateBackendConfig validates the run tracking backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.RunBackend = schema.DatabaseBackend(strings.ToLower(input.RunBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.RunBackend]; !ok {
		return fmt.Errorf("invalid run backend '%s'. must be sqlite, mysql, postgresql, none", input.RunBackend)
	}
	cfg.RunDBConnect = input.RunDBConnect
	return ValidateDatabaseConnectionString(cfg.RunBackend, cfg.RunDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
