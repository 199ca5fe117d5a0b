// Package config loads service configuration from defaults, an optional
// config file, and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the service reads
const EnvPrefix = "RESUME_PARSER"

// Config is the service configuration
type Config struct {
	AppName           string          `mapstructure:"app_name" json:"app_name" validate:"required"`
	AppVersion        string          `mapstructure:"app_version" json:"app_version" validate:"required"`
	Debug             bool            `mapstructure:"debug" json:"debug"`
	LogJSON           bool            `mapstructure:"log_json" json:"log_json"`
	Port              int             `mapstructure:"port" json:"port" validate:"min=1,max=65535"`
	MaxFileSize       int64           `mapstructure:"max_file_size" json:"max_file_size" validate:"gt=0"`
	AllowedExtensions []string        `mapstructure:"allowed_extensions" json:"allowed_extensions" validate:"min=1,dive,startswith=."`
	Annotator         string          `mapstructure:"annotator" json:"annotator" validate:"oneof=heuristic gemini none"`
	GeminiAPIKey      string          `mapstructure:"gemini_api_key" json:"-" validate:"required_if=Annotator gemini"`
	GeminiModel       string          `mapstructure:"gemini_model" json:"gemini_model"`
	DatabaseURL       string          `mapstructure:"database_url" json:"-"`
	IncludeRawText    bool            `mapstructure:"include_raw_text" json:"include_raw_text"`
	ReadTimeout       time.Duration   `mapstructure:"read_timeout" json:"read_timeout" validate:"gt=0"`
	WriteTimeout      time.Duration   `mapstructure:"write_timeout" json:"write_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration   `mapstructure:"shutdown_timeout" json:"shutdown_timeout" validate:"gt=0"`
	Concurrency       int             `mapstructure:"concurrency" json:"concurrency" validate:"min=1,max=64"`
	RateLimit         RateLimitConfig `mapstructure:"rate_limit" json:"rate_limit"`
}

// RateLimitConfig configures request rate limiting
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled" json:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit" json:"default_limit" validate:"gte=0"`
	DefaultWindow   time.Duration `mapstructure:"default_window" json:"default_window" validate:"gt=0"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" json:"cleanup_interval" validate:"gte=0"`
	Whitelist       string        `mapstructure:"whitelist" json:"whitelist"`
	Blacklist       string        `mapstructure:"blacklist" json:"blacklist"`
}

// defaults lists every key with its default value. Keys must be registered
// here for environment overrides to reach Unmarshal.
var defaults = map[string]any{
	"app_name":                    "Smart Resume Parser",
	"app_version":                 "1.0.0",
	"debug":                       false,
	"log_json":                    false,
	"port":                        8080,
	"max_file_size":               10 << 20,
	"allowed_extensions":          []string{".pdf", ".docx", ".odt", ".txt", ".html"},
	"annotator":                   "heuristic",
	"gemini_api_key":              "",
	"gemini_model":                "",
	"database_url":                "",
	"include_raw_text":            false,
	"read_timeout":                30 * time.Second,
	"write_timeout":               60 * time.Second,
	"shutdown_timeout":            15 * time.Second,
	"concurrency":                 4,
	"rate_limit.enabled":          true,
	"rate_limit.default_limit":    600,
	"rate_limit.default_window":   time.Minute,
	"rate_limit.cleanup_interval": 5 * time.Minute,
	"rate_limit.whitelist":        "",
	"rate_limit.blacklist":        "",
}

// unprefixedEnv binds keys to conventional variable names in addition to the
// prefixed ones
var unprefixedEnv = map[string]string{
	"database_url":                "DATABASE_URL",
	"gemini_api_key":              "GEMINI_API_KEY",
	"rate_limit.enabled":          "RATE_LIMIT_ENABLED",
	"rate_limit.default_limit":    "RATE_LIMIT_DEFAULT_LIMIT",
	"rate_limit.default_window":   "RATE_LIMIT_DEFAULT_WINDOW",
	"rate_limit.cleanup_interval": "RATE_LIMIT_CLEANUP_INTERVAL",
	"rate_limit.whitelist":        "RATE_LIMIT_WHITELIST",
	"rate_limit.blacklist":        "RATE_LIMIT_BLACKLIST",
}

// NewViper returns a viper instance with defaults and environment bindings.
// Callers may bind command-line flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range unprefixedEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		// BindEnv only fails when called without a key
		_ = v.BindEnv(key, prefixed, env)
	}
	return v
}

// Load reads the optional config file at path into v, then decodes and
// validates the result
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with no file and no environment
func Default() *Config {
	var cfg Config
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	// defaults always decode
	_ = v.Unmarshal(&cfg)
	cfg.normalize()
	return &cfg
}

// normalize lowercases extensions and the annotator name
func (c *Config) normalize() {
	c.Annotator = strings.ToLower(strings.TrimSpace(c.Annotator))
	if c.AllowedExtensions == nil {
		return
	}
	exts := make([]string, 0, len(c.AllowedExtensions))
	for _, ext := range c.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.AllowedExtensions = exts
}

// Validate checks field constraints and reports every violation
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}

// AllowsExtension reports whether ext (with leading dot) may be uploaded
func (c *Config) AllowsExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range c.AllowedExtensions {
		if allowed == ext {
			return true
		}
	}
	return false
}

// Addr returns the listen address for Port
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
