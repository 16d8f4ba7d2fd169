// Package config loads resizer defaults from a TOML file, an optional .env
// file and IMAGE_RESIZER_* environment variables, in that order of precedence
// (later sources win).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/ironsheep/image-resizer/internal/imaging"
	"github.com/ironsheep/image-resizer/internal/resample"
)

// Environment variables read by Load.
const (
	EnvJPEGQuality    = "IMAGE_RESIZER_JPEG_QUALITY"
	EnvPNGCompression = "IMAGE_RESIZER_PNG_COMPRESSION"
	EnvResampler      = "IMAGE_RESIZER_RESAMPLER"
	EnvLogLevel       = "IMAGE_RESIZER_LOG_LEVEL"
	EnvDisabledCodecs = "IMAGE_RESIZER_DISABLED_CODECS"
	EnvConfigFile     = "IMAGE_RESIZER_CONFIG"
)

// Config holds the construction-time defaults for every Resizer.
type Config struct {
	// JPEGQuality is used when a JPEG is saved without an explicit quality (0-100).
	JPEGQuality int `toml:"jpeg_quality"`

	// PNGCompression is used when a PNG is saved without an explicit level (0-9).
	PNGCompression int `toml:"png_compression"`

	// Resampler names the resampling backend, see resample.Names.
	Resampler string `toml:"resampler"`

	// LogLevel is an hclog level name: trace, debug, info, warn, error, off.
	LogLevel string `toml:"log_level"`

	// DisabledCodecs lists output formats that Save must refuse.
	DisabledCodecs []string `toml:"disabled_codecs"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		JPEGQuality:    imaging.DefaultJPEGQuality,
		PNGCompression: imaging.DefaultPNGCompression,
		Resampler:      resample.DefaultName,
		LogLevel:       "info",
	}
}

// Load builds a Config from the defaults, the TOML file at path (skipped when
// path is empty), a .env file in the working directory if present, and the
// environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	// .env is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from environment variables that are set.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvJPEGQuality); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJPEGQuality, err)
		}
		c.JPEGQuality = n
	}
	if v, ok := lookup(EnvPNGCompression); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPNGCompression, err)
		}
		c.PNGCompression = n
	}
	if v, ok := lookup(EnvResampler); ok && v != "" {
		c.Resampler = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvDisabledCodecs); ok {
		c.DisabledCodecs = nil
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				c.DisabledCodecs = append(c.DisabledCodecs, part)
			}
		}
	}
	return nil
}

// Validate rejects defaults outside their format's range and unknown names.
func (c Config) Validate() error {
	if c.JPEGQuality < imaging.MinJPEGQuality || c.JPEGQuality > imaging.MaxJPEGQuality {
		return fmt.Errorf("jpeg_quality %d out of range %d-%d",
			c.JPEGQuality, imaging.MinJPEGQuality, imaging.MaxJPEGQuality)
	}
	if c.PNGCompression < imaging.MinPNGCompression || c.PNGCompression > imaging.MaxPNGCompression {
		return fmt.Errorf("png_compression %d out of range %d-%d",
			c.PNGCompression, imaging.MinPNGCompression, imaging.MaxPNGCompression)
	}
	if _, err := resample.Lookup(c.Resampler); err != nil {
		return err
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if _, err := c.disabledFormats(); err != nil {
		return err
	}
	return nil
}

func (c Config) disabledFormats() ([]imaging.Format, error) {
	formats := make([]imaging.Format, 0, len(c.DisabledCodecs))
	for _, name := range c.DisabledCodecs {
		f, err := imaging.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("disabled_codecs: %w", err)
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// Level returns the configured hclog level.
func (c Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// ResizerOptions converts the configuration into imaging options. The logger
// may be nil.
func (c Config) ResizerOptions(logger hclog.Logger) ([]imaging.Option, error) {
	rs, err := resample.Lookup(c.Resampler)
	if err != nil {
		return nil, err
	}
	disabled, err := c.disabledFormats()
	if err != nil {
		return nil, err
	}

	opts := []imaging.Option{
		imaging.WithJPEGQuality(c.JPEGQuality),
		imaging.WithPNGCompression(c.PNGCompression),
		imaging.WithResampler(rs),
		imaging.WithCodecs(imaging.DefaultCodecs().Without(disabled...)),
	}
	if logger != nil {
		opts = append(opts, imaging.WithLogger(logger))
	}
	return opts, nil
}
