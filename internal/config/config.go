package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds application configuration.
type Config struct {
	// DBPath is the SQLite database file. Defaults to <baseDir>/cards.db.
	DBPath string `json:"db_path,omitempty"`

	// Bind is the address the HTTP API binds to.
	Bind string `json:"bind,omitempty"`

	// Port is the HTTP API port.
	Port int `json:"port,omitempty"`

	// DBMaxOpenConns limits open database connections. The default of 1
	// serializes every store operation on the single shared connection.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Bind:           "0.0.0.0",
		Port:           3000,
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	}
}

// Load loads configuration from baseDir/config.json, merged over defaults,
// then applies environment overrides (CARDEX_DB_PATH, CARDEX_BIND,
// CARDEX_PORT). Returns defaults if the file doesn't exist. The baseDir
// parameter allows tests to use t.TempDir() instead of ~/.cardex.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFile(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(baseDir, "cards.db")
	}
	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs. Overlay values take precedence
// for scalars; the tool list is concatenated and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.DBPath = overlay.DBPath
	if result.DBPath == "" {
		result.DBPath = base.DBPath
	}

	result.Bind = overlay.Bind
	if result.Bind == "" {
		result.Bind = base.Bind
	}

	result.Port = overlay.Port
	if result.Port == 0 {
		result.Port = base.Port
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// applyEnv overrides config values from the environment. A .env file, if
// present, is loaded by main before this runs.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CARDEX_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CARDEX_BIND"); v != "" {
		cfg.Bind = v
	}
	if v := os.Getenv("CARDEX_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.Port = p
		}
	}
}

// mergeStringSlice combines two slices and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
