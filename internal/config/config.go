// Package config loads the orbitpathd service configuration.
//
// Sources, lowest to highest priority:
//  1. Defaults (in code).
//  2. Optional YAML file.
//  3. Environment variables prefixed with ORBITPATH_.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orbitpath/dijkstra"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ORBITPATH_"

// Sentinel errors returned by Load and Validate.
var (
	ErrInvalidPort    = errors.New("config: port must be in 1..65535")
	ErrInvalidTimeout = errors.New("config: timeouts must be positive")
	ErrInvalidEngine  = errors.New("config: invalid engine settings")
	ErrInvalidLogging = errors.New("config: invalid logging settings")
)

// Config aggregates service configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
}

// HTTPConfig governs the HTTP server.
type HTTPConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	AllowedOrigins  []string      `yaml:"allowedOrigins"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // json|console
}

// EngineConfig holds the defaults applied to every shortest-path request.
type EngineConfig struct {
	TieBreak string `yaml:"tieBreak"` // lowest|insertion
	Strategy string `yaml:"strategy"` // scan|heap
}

// Default returns the in-code defaults.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Engine: EngineConfig{
			TieBreak: dijkstra.TieBreakLowestValue.String(),
			Strategy: dijkstra.StrategyScan.String(),
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enum values.
func (c Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, c.HTTP.Port)
	}
	for name, d := range map[string]time.Duration{
		"readTimeout":     c.HTTP.ReadTimeout,
		"writeTimeout":    c.HTTP.WriteTimeout,
		"idleTimeout":     c.HTTP.IdleTimeout,
		"shutdownTimeout": c.HTTP.ShutdownTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%w: %s=%s", ErrInvalidTimeout, name, d)
		}
	}
	if _, err := dijkstra.ParseTieBreak(c.Engine.TieBreak); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEngine, err)
	}
	if _, err := dijkstra.ParseStrategy(c.Engine.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEngine, err)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: level %q", ErrInvalidLogging, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidLogging, c.Logging.Format)
	}

	return nil
}

// EngineOptions converts the engine section into dijkstra options.
// Call after Validate; unknown names fall back to defaults.
func (c Config) EngineOptions() []dijkstra.Option {
	tb, _ := dijkstra.ParseTieBreak(c.Engine.TieBreak)
	st, _ := dijkstra.ParseStrategy(c.Engine.Strategy)

	return []dijkstra.Option{dijkstra.WithTieBreak(tb), dijkstra.WithStrategy(st)}
}

// Addr returns host:port.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// lookupFunc matches os.LookupEnv so tests can inject an environment.
type lookupFunc func(key string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	if v, ok := lookup(EnvPrefix + "HOST"); ok {
		cfg.HTTP.Host = v
	}
	if v, ok := lookup(EnvPrefix + "PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidPort, EnvPrefix, "PORT", v)
		}
		cfg.HTTP.Port = port
	}
	durations := map[string]*time.Duration{
		"READ_TIMEOUT":     &cfg.HTTP.ReadTimeout,
		"WRITE_TIMEOUT":    &cfg.HTTP.WriteTimeout,
		"IDLE_TIMEOUT":     &cfg.HTTP.IdleTimeout,
		"SHUTDOWN_TIMEOUT": &cfg.HTTP.ShutdownTimeout,
	}
	for key, dst := range durations {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidTimeout, EnvPrefix, key, v)
		}
		*dst = d
	}
	if v, ok := lookup(EnvPrefix + "ALLOWED_ORIGINS"); ok {
		cfg.HTTP.AllowedOrigins = splitCSV(v)
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		cfg.Logging.Format = v
	}
	if v, ok := lookup(EnvPrefix + "TIE_BREAK"); ok {
		cfg.Engine.TieBreak = v
	}
	if v, ok := lookup(EnvPrefix + "STRATEGY"); ok {
		cfg.Engine.Strategy = v
	}

	return nil
}

func splitCSV(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}
