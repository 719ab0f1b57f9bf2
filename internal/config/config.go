package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mistweaverco/jokester/internal/lib/files"
	"github.com/mistweaverco/jokester/internal/lib/jokeapi"
	"gopkg.in/yaml.v3"
)

type ColorMode string

const (
	ColorModeAuto   ColorMode = "auto"   // Use colors only when TTY
	ColorModeAlways ColorMode = "always" // Always use colors/icons
	ColorModeNever  ColorMode = "never"  // Never use colors/icons
)

// String implements the flag.Value interface for ColorMode
func (c *ColorMode) String() string {
	if c == nil || *c == "" {
		return string(ColorModeAuto)
	}
	return string(*c)
}

// Set implements the flag.Value interface for ColorMode
func (c *ColorMode) Set(value string) error {
	switch value {
	case "always", "auto", "never":
		*c = ColorMode(value)
		return nil
	default:
		return fmt.Errorf("invalid color mode: %s (must be 'always', 'auto', or 'never')", value)
	}
}

// Type implements the flag.Value interface for ColorMode
func (c *ColorMode) Type() string {
	return "string"
}

type OutputMode string

const (
	OutputModeRich  OutputMode = "rich"
	OutputModePlain OutputMode = "plain"
	OutputModeJSON  OutputMode = "json"
)

func (o *OutputMode) String() string {
	if o == nil || *o == "" {
		return string(OutputModeRich)
	}
	return string(*o)
}

func (o *OutputMode) Set(value string) error {
	switch value {
	case "rich", "plain", "json":
		*o = OutputMode(value)
		return nil
	default:
		return fmt.Errorf("invalid output mode: %s (must be 'rich', 'plain', or 'json')", value)
	}
}

func (o *OutputMode) Type() string {
	return "string"
}

type ConfigFlags struct {
	Version bool
	APIURL  string
	Timeout time.Duration
	// TimeoutSet marks Timeout as explicitly configured, so a zero value wins over fallbacks.
	TimeoutSet bool
	Color      ColorMode
	Output     OutputMode
}

// fileFlags is the on-disk shape of ConfigFlags.
type fileFlags struct {
	APIURL  string     `yaml:"api_url,omitempty"`
	Timeout string     `yaml:"timeout,omitempty"`
	Color   ColorMode  `yaml:"color,omitempty"`
	Output  OutputMode `yaml:"output,omitempty"`
}

type Config struct {
	Flags ConfigFlags
}

func (c Config) GetConfigFlags() ConfigFlags {
	return c.Flags
}

func NewConfig(cfg Config) Config {
	return cfg
}

// Defaults returns the flags used when nothing else is configured.
// A zero Timeout means requests are never cut short.
func Defaults() ConfigFlags {
	return ConfigFlags{
		APIURL: jokeapi.DefaultURL,
		Color:  ColorModeAuto,
		Output: OutputModeRich,
	}
}

// LoadFile reads the YAML config file at path. A missing file yields empty flags.
func LoadFile(path string) (ConfigFlags, error) {
	var flags ConfigFlags
	data, err := files.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return flags, nil
		}
		return flags, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	var raw fileFlags
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return flags, fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	flags = ConfigFlags{APIURL: raw.APIURL, Color: raw.Color, Output: raw.Output}
	if raw.Timeout != "" {
		if flags.Timeout, err = time.ParseDuration(raw.Timeout); err != nil {
			return flags, fmt.Errorf("invalid timeout in config file %s: %w", path, err)
		}
		flags.TimeoutSet = true
	}
	if err := flags.Validate(); err != nil {
		return flags, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return flags, nil
}

// Marshal encodes flags in the config file format.
func Marshal(flags ConfigFlags) ([]byte, error) {
	raw := fileFlags{APIURL: flags.APIURL, Color: flags.Color, Output: flags.Output}
	if flags.Timeout > 0 || flags.TimeoutSet {
		raw.Timeout = flags.Timeout.String()
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}
	return data, nil
}

// SaveFile writes flags to path as YAML.
func SaveFile(path string, flags ConfigFlags) error {
	data, err := Marshal(flags)
	if err != nil {
		return err
	}
	if err := files.WriteFile(path, data); err != nil {
		return fmt.Errorf("error writing config file %s: %w", path, err)
	}
	return nil
}

func (f ConfigFlags) Validate() error {
	if f.Color != "" {
		if err := new(ColorMode).Set(string(f.Color)); err != nil {
			return err
		}
	}
	if f.Output != "" {
		if err := new(OutputMode).Set(string(f.Output)); err != nil {
			return err
		}
	}
	if f.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// Merge fills every unset field of f from fallback.
func (f ConfigFlags) Merge(fallback ConfigFlags) ConfigFlags {
	if f.APIURL == "" {
		f.APIURL = fallback.APIURL
	}
	if f.Timeout == 0 && !f.TimeoutSet {
		f.Timeout = fallback.Timeout
		f.TimeoutSet = fallback.TimeoutSet
	}
	if f.Color == "" {
		f.Color = fallback.Color
	}
	if f.Output == "" {
		f.Output = fallback.Output
	}
	return f
}

// FromEnv reads the JOKESTER_* overrides.
func FromEnv() ConfigFlags {
	return ConfigFlags{
		APIURL: os.Getenv("JOKESTER_API_URL"),
	}
}

// Resolve layers explicitly set flags over env, the config file and defaults.
func Resolve(set ConfigFlags) (ConfigFlags, error) {
	path, err := files.GetConfigFilePath()
	if err != nil {
		return set, err
	}
	fromFile, err := LoadFile(path)
	if err != nil {
		return set, err
	}
	return set.Merge(FromEnv()).Merge(fromFile).Merge(Defaults()), nil
}
