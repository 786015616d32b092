// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jeranaias/cookbot-tui/internal/util"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid config")

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete cookbot configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	Backend BackendConfig `toml:"backend" json:"backend"`
	UI      UIConfig      `toml:"ui" json:"ui"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
	Server  ServerConfig  `toml:"server" json:"server"`
}

// BackendConfig describes the remote recipe-assistant service.
type BackendConfig struct {
	// URL is the API base, e.g. http://127.0.0.1:5000/api
	URL string `toml:"url" json:"url"`
	// TimeoutSeconds bounds each request
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds"`
	// RequestsPerSecond caps outbound requests; 0 disables the cap
	RequestsPerSecond float64 `toml:"requests_per_second" json:"requests_per_second"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme is "dark", "light" or "auto"
	Theme               string `toml:"theme" json:"theme"`
	ContactClearSeconds int    `toml:"contact_clear_seconds" json:"contact_clear_seconds"`
	CopiedResetSeconds  int    `toml:"copied_reset_seconds" json:"copied_reset_seconds"`
	ShowWelcome         bool   `toml:"show_welcome" json:"show_welcome"`
}

// LoggingConfig controls the zap file logger.
type LoggingConfig struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	Level   string `toml:"level" json:"level"`
	// File is the log path; empty means ~/.cookbot/cookbot.log
	File string `toml:"file" json:"file"`
}

// ServerConfig configures the local development backend.
type ServerConfig struct {
	Addr           string   `toml:"addr" json:"addr"`
	AllowedOrigins []string `toml:"allowed_origins" json:"allowed_origins"`
}

// Timeout returns the request timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// ContactClearDelay is how long contact form messages stay visible.
func (u UIConfig) ContactClearDelay() time.Duration {
	return time.Duration(u.ContactClearSeconds) * time.Second
}

// CopiedResetDelay is how long the "Copied!" indicator stays visible.
func (u UIConfig) CopiedResetDelay() time.Duration {
	return time.Duration(u.CopiedResetSeconds) * time.Second
}

// Path returns the log file path, resolving the default location.
func (l LoggingConfig) Path() string {
	if l.File != "" {
		return l.File
	}
	dir, err := ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cookbot.log")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Backend: BackendConfig{
			URL:               "http://127.0.0.1:5000/api",
			TimeoutSeconds:    30,
			RequestsPerSecond: 0,
		},
		UI: UIConfig{
			Theme:               "auto",
			ContactClearSeconds: 5,
			CopiedResetSeconds:  2,
			ShowWelcome:         true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:5000",
			AllowedOrigins: []string{
				"http://localhost:5173",
				"https://cookingchatbot.netlify.app",
			},
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the cookbot configuration directory.
func ConfigDir() (string, error) {
	if dir := os.Getenv("COOKBOT_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".cookbot"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir creates the config directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// LoadDotEnv loads KEY=value pairs from the given files (default ".env")
// into the process environment. Variables already set are not replaced,
// and missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load %s: %w", strings.Join(existing, ", "), err)
	}
	return nil
}

// Load reads the TOML config, falling back to JSON and then to defaults.
// A .env file in the working directory and environment overrides are
// applied last.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cfg := Default()
	var loadErr error

	for _, candidate := range []struct {
		path func() (string, error)
		load func(*Config, string) error
	}{
		{ConfigPathTOML, LoadTOML},
		{ConfigPathJSON, LoadJSON},
	} {
		path, err := candidate.path()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		if err := candidate.load(cfg, path); err != nil {
			loadErr = err
			cfg = Default()
			continue
		}
		loadErr = nil
		break
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// LoadFromPath loads configuration from a specific file with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	load := LoadTOML
	if strings.HasSuffix(path, ".json") {
		load = LoadJSON
	}
	if err := load(cfg, path); err != nil {
		return nil, err
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML config %s: %w", path, err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON config %s: %w", path, err)
	}
	return nil
}

// finish applies env overrides and defaults, then validates.
func (c *Config) finish() error {
	c.ApplyEnvOverrides()
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

const configHeader = "# cookbot configuration file\n" +
	"# BACKEND_URI and COOKBOT_* environment variables override these values\n\n"

// SaveTOML writes cfg as TOML with a short header.
func SaveTOML(cfg *Config, path string) error {
	err := util.AtomicWrite(path, 0600, func(w io.Writer) error {
		if _, err := io.WriteString(w, configHeader); err != nil {
			return err
		}
		return toml.NewEncoder(w).Encode(cfg)
	})
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// SaveJSON writes cfg as indented JSON.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{"auto", "dark", "light"}

// Validate checks the configuration and returns ValidateErrors on failure.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if u, err := url.Parse(c.Backend.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "backend.url",
			Message: fmt.Sprintf("invalid URL '%s', must be an absolute http(s) URL", c.Backend.URL),
		})
	}
	if c.Backend.TimeoutSeconds < 1 || c.Backend.TimeoutSeconds > 600 {
		errs = append(errs, ValidationError{
			Field:   "backend.timeout_seconds",
			Message: fmt.Sprintf("must be between 1 and 600, got %d", c.Backend.TimeoutSeconds),
		})
	}
	if c.Backend.RequestsPerSecond < 0 {
		errs = append(errs, ValidationError{
			Field:   "backend.requests_per_second",
			Message: "must not be negative",
		})
	}

	if !isValidTheme(c.UI.Theme) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: %s", c.UI.Theme, strings.Join(ValidThemes, ", ")),
		})
	}
	if c.UI.ContactClearSeconds < 1 || c.UI.ContactClearSeconds > 60 {
		errs = append(errs, ValidationError{
			Field:   "ui.contact_clear_seconds",
			Message: fmt.Sprintf("must be between 1 and 60, got %d", c.UI.ContactClearSeconds),
		})
	}
	if c.UI.CopiedResetSeconds < 1 || c.UI.CopiedResetSeconds > 60 {
		errs = append(errs, ValidationError{
			Field:   "ui.copied_reset_seconds",
			Message: fmt.Sprintf("must be between 1 and 60, got %d", c.UI.CopiedResetSeconds),
		})
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Logging.Level),
		})
	}

	if c.Server.Addr == "" {
		errs = append(errs, ValidationError{Field: "server.addr", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isValidTheme(theme string) bool {
	for _, t := range ValidThemes {
		if strings.EqualFold(theme, t) {
			return true
		}
	}
	return false
}

// SetDefaults fills zero values with defaults and normalizes case.
func (c *Config) SetDefaults() {
	d := Default()

	if c.Version == "" {
		c.Version = d.Version
	}
	if c.Backend.URL == "" {
		c.Backend.URL = d.Backend.URL
	}
	c.Backend.URL = strings.TrimSuffix(strings.TrimSpace(c.Backend.URL), "/")
	if c.Backend.TimeoutSeconds == 0 {
		c.Backend.TimeoutSeconds = d.Backend.TimeoutSeconds
	}
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	if c.UI.ContactClearSeconds == 0 {
		c.UI.ContactClearSeconds = d.UI.ContactClearSeconds
	}
	if c.UI.CopiedResetSeconds == 0 {
		c.UI.CopiedResetSeconds = d.UI.CopiedResetSeconds
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variables on top of file values:
//   - BACKEND_URI: overrides backend.url
//   - COOKBOT_BACKEND_URL: overrides backend.url (wins over BACKEND_URI)
//   - COOKBOT_TIMEOUT: overrides backend.timeout_seconds
//   - COOKBOT_THEME: overrides ui.theme
//   - COOKBOT_LOG_LEVEL: overrides logging.level
//   - COOKBOT_LOG_FILE: overrides logging.file
//   - COOKBOT_SERVER_ADDR: overrides server.addr
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("BACKEND_URI"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("COOKBOT_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("COOKBOT_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Backend.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("COOKBOT_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("COOKBOT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("COOKBOT_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("COOKBOT_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set assigns a value using dot notation. String values are converted to
// the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

// lookup walks the struct tree along a dotted key.
func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts snake_case or kebab-case to a Go field name.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var result strings.Builder
	for _, part := range parts {
		result.WriteString(strings.ToUpper(part[:1]))
		result.WriteString(strings.ToLower(part[1:]))
	}
	return result.String()
}

// setFieldValue assigns value to field, parsing strings as needed.
func setFieldValue(field reflect.Value, value interface{}) error {
	if s, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(s)
			return nil
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %w", err)
			}
			field.SetInt(n)
			return nil
		case reflect.Float64:
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %w", err)
			}
			field.SetFloat(f)
			return nil
		case reflect.Bool:
			b, err := strconv.ParseBool(s)
			if err != nil {
				return fmt.Errorf("invalid boolean value: %w", err)
			}
			field.SetBool(b)
			return nil
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				var items []string
				for _, item := range strings.Split(s, ",") {
					if item = strings.TrimSpace(item); item != "" {
						items = append(items, item)
					}
				}
				field.Set(reflect.ValueOf(items))
				return nil
			}
		}
	}

	val := reflect.ValueOf(value)
	if val.IsValid() && val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.IsValid() && val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns every configuration key in dot notation.
func GetAllKeys() []string {
	var keys []string
	collectKeys(reflect.TypeOf(Config{}), "", &keys)
	return keys
}

func collectKeys(t reflect.Type, prefix string, keys *[]string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("toml"), ",")[0]
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if f.Type.Kind() == reflect.Struct {
			collectKeys(f.Type, name, keys)
			continue
		}
		*keys = append(*keys, name)
	}
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Server.AllowedOrigins = append([]string(nil), c.Server.AllowedOrigins...)
	return &clone
}

// String renders the config as TOML for display.
func (c *Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return sb.String()
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the process-wide configuration from disk. On error
// the current configuration is kept.
func ReloadGlobal() error {
	cfg, err := Load()
	if cfg == nil {
		return err
	}
	SetGlobal(cfg)
	return err
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting clears the process-wide configuration.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
