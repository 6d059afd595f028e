package gamelang

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the settings shared by interpreters created with
// NewFromConfig. It is usually loaded from a TOML file:
//
//	log_level = "warn"
//	log_format = "text"
//	seed = [1, 2]
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// LogFormat is json or text.
	LogFormat string `toml:"log_format"`

	// Seed makes random() reproducible. Both words of a PCG seed are
	// required; an empty seed uses the global generator.
	Seed []uint64 `toml:"seed"`

	// Output receives log records. It defaults to os.Stderr.
	Output io.Writer `toml:"-"`
}

// DefaultConfig logs errors as JSON to stderr and leaves random() unseeded.
func DefaultConfig() *Config {
	return &Config{LogLevel: "error", LogFormat: "json"}
}

// LoadConfig reads a TOML configuration file. Keys not listed above are
// rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// DecodeConfig reads a TOML configuration from r.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
	}
	return nil
}

// Validate checks the level, the format and the seed.
func (c *Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "json", "text":
	default:
		return fmt.Errorf("config: unknown log_format %q", c.LogFormat)
	}
	if len(c.Seed) != 0 && len(c.Seed) != 2 {
		return fmt.Errorf("config: seed needs 2 words, got %d", len(c.Seed))
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelError, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}

// Logger builds the logger described by the configuration.
func (c *Config) Logger() (*slog.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := c.level()
	w := c.Output
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

// Rand returns a seeded generator, or nil when no seed is configured.
func (c *Config) Rand() *rand.Rand {
	if len(c.Seed) != 2 {
		return nil
	}
	return rand.New(rand.NewPCG(c.Seed[0], c.Seed[1]))
}
