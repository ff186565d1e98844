// Package config loads the settings of the calculator shells.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

const (
	// FormatTOML is TOML, the default.
	FormatTOML Format = iota
	// FormatYAML is YAML.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// DetectFormat chooses a format from a file name's extension. Anything but
// .yaml or .yml is TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Config is the shell configuration.
type Config struct {
	// Precision is the working precision of evaluation in bits.
	Precision uint `toml:"precision" yaml:"precision"`
	// Digits is the number of significant digits in results.
	Digits int `toml:"digits" yaml:"digits"`
	// Flash is how long a pressed button stays highlighted.
	Flash Duration `toml:"flash" yaml:"flash"`
	Theme Theme    `toml:"theme" yaml:"theme"`
}

// Theme holds the colors of the keypad, in any form lipgloss accepts.
type Theme struct {
	Primary string `toml:"primary" yaml:"primary"`
	Accent  string `toml:"accent" yaml:"accent"`
	Display string `toml:"display" yaml:"display"`
}

// Duration is a time.Duration written as a string such as "100ms".
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the configuration used when no file sets a value.
func Default() Config {
	return Config{
		Precision: 64,
		Digits:    12,
		Flash:     Duration(100 * time.Millisecond),
		Theme: Theme{
			Primary: "#81C8F3",
			Accent:  "#28A1ED",
			Display: "#333333",
		},
	}
}

// MaxDigits is the largest accepted number of significant digits.
const MaxDigits = 30

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Precision == 0:
		return errors.New("precision must be positive")
	case c.Digits < 1 || c.Digits > MaxDigits:
		return fmt.Errorf("digits must be between 1 and %d, not %d", MaxDigits, c.Digits)
	case c.Flash < 0:
		return fmt.Errorf("flash must not be negative, not %v", time.Duration(c.Flash))
	}
	return nil
}

// DefaultPath returns the path of the configuration file used when none is
// given, under the user's configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "calc", "config.toml"), nil
}

// Load reads the configuration file at path over the defaults, then applies
// environment overrides and validates the result. If path is empty, the file
// at DefaultPath is used if it exists.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			// No configuration directory means no configuration file.
			return finish(cfg)
		}
		path = p
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Parse(&cfg, b, DetectFormat(path)); err != nil {
			return Config{}, fmt.Errorf("couldn't parse %s: %w", path, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// Optional.
	default:
		return Config{}, fmt.Errorf("couldn't read config: %w", err)
	}
	return finish(cfg)
}

func finish(cfg Config) (Config, error) {
	if err := Env(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Parse decodes content in the given format into cfg. Settings absent from
// content keep their values in cfg.
func Parse(cfg *Config, content []byte, format Format) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %v", format)
	}
	return nil
}

// EnvPrefix prefixes the names of environment variables which override the
// configuration file.
const EnvPrefix = "CALC_"

// Env applies overrides from CALC_PRECISION, CALC_DIGITS, and CALC_FLASH as
// reported by lookup.
func Env(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "PRECISION"); ok {
		p, err := strconv.ParseUint(v, 10, 0)
		if err != nil {
			return fmt.Errorf("%sPRECISION: %w", EnvPrefix, err)
		}
		cfg.Precision = uint(p)
	}
	if v, ok := lookup(EnvPrefix + "DIGITS"); ok {
		d, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sDIGITS: %w", EnvPrefix, err)
		}
		cfg.Digits = d
	}
	if v, ok := lookup(EnvPrefix + "FLASH"); ok {
		if err := cfg.Flash.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%sFLASH: %w", EnvPrefix, err)
		}
	}
	return nil
}
