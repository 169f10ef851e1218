// Package config resolves roadtrack settings from defaults, an optional YAML
// or TOML file and ROADTRACK_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/alexanderramin/roadtrack/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the CLI needs to wire the application.
type Config struct {
	// DBPath is the SQLite file; ":memory:" keeps state for one run only.
	DBPath string `yaml:"db_path" toml:"db_path"`
	// CatalogDir serves catalogs from disk instead of the embedded copies.
	CatalogDir string `yaml:"catalog_dir" toml:"catalog_dir"`
	// CatalogURL fetches catalogs over HTTP from this base URL.
	CatalogURL    string `yaml:"catalog_url" toml:"catalog_url"`
	HTTPTimeoutMs int    `yaml:"http_timeout_ms" toml:"http_timeout_ms"`
	LogUseCases   bool   `yaml:"log_use_cases" toml:"log_use_cases"`
	// MetricsFile, when set, receives the run's Prometheus metrics in text
	// exposition format on exit, for a node-exporter textfile collector.
	MetricsFile string `yaml:"metrics_file" toml:"metrics_file"`
	NoColor     bool   `yaml:"no_color" toml:"no_color"`
}

// DefaultConfig returns the built-in settings rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:        filepath.Join(home, ".roadtrack", "roadtrack.db"),
		HTTPTimeoutMs: 10000,
	}
}

// DefaultConfigPath is where Load looks when ROADTRACK_CONFIG is unset.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ".roadtrack", "config.yaml")
}

// HTTPTimeout returns the catalog fetch timeout.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMs) * time.Millisecond
}

// Validate rejects contradictory settings.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.CatalogDir != "" && c.CatalogURL != "" {
		return fmt.Errorf("catalog_dir and catalog_url are mutually exclusive")
	}
	if c.HTTPTimeoutMs < 0 {
		return fmt.Errorf("http_timeout_ms must not be negative")
	}
	return nil
}

// LoadFile merges a config file into cfg. The format follows the extension:
// .toml is TOML, anything else is YAML. Keys absent from the file leave cfg
// untouched.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return nil
}

// Load resolves the configuration: defaults, then the config file (path, else
// ROADTRACK_CONFIG, else the default path when it exists), then env overrides.
func Load(path string) (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	path = domain.CoalesceStr(path, os.Getenv("ROADTRACK_CONFIG"))
	explicit := path != ""
	path = domain.CoalesceStr(path, DefaultConfigPath(home))
	if err := LoadFile(&cfg, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading config: %w", err)
		}
	}

	ApplyEnv(&cfg)
	return cfg, cfg.Validate()
}

// ApplyEnv overrides cfg with any ROADTRACK_* variables that are set.
// Unparseable numeric or boolean values are ignored.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("ROADTRACK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ROADTRACK_CATALOG_DIR"); v != "" {
		cfg.CatalogDir = v
	}
	if v := os.Getenv("ROADTRACK_CATALOG_URL"); v != "" {
		cfg.CatalogURL = v
	}
	if v := os.Getenv("ROADTRACK_HTTP_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.HTTPTimeoutMs = n
		}
	}
	if v := os.Getenv("ROADTRACK_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("ROADTRACK_METRICS_FILE"); v != "" {
		cfg.MetricsFile = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}
}
