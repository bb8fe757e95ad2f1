// Package config loads cfront settings from TOML, YAML or CUE files.
//
// Whatever the file format, the decoded document is checked against one
// closed CUE schema, so unknown keys and out-of-range values are rejected the
// same way everywhere.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted when no config path is
// given on the command line.
const EnvVar = "CFRONT_CONFIG"

// Accepted values.
var (
	Levels  = []string{"debug", "info", "warn", "error"}
	Formats = []string{"text", "json", "yaml"}
)

// ErrUnknownFormat is returned for a config file whose extension is not
// .toml, .yaml, .yml or .cue.
var ErrUnknownFormat = errors.New("unknown config file format")

// Config holds every setting. Field tags give the key names in all three
// file formats.
type Config struct {
	Log    Log    `toml:"log" yaml:"log" json:"log"`
	Output Output `toml:"output" yaml:"output" json:"output"`
}

// Log configures diagnostics logging.
type Log struct {
	Level string `toml:"level" yaml:"level" json:"level"`
	// File receives JSON records as well; empty disables it.
	File string `toml:"file" yaml:"file" json:"file"`
	// Journal also sends records to the systemd journal.
	Journal bool `toml:"journal" yaml:"journal" json:"journal"`
}

// Output configures what the commands print.
type Output struct {
	Format string `toml:"format" yaml:"format" json:"format"`
	Color  bool   `toml:"color" yaml:"color" json:"color"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Log:    Log{Level: "warn"},
		Output: Output{Format: "text", Color: true},
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q: want one of %s", c.Log.Level, strings.Join(Levels, ", ")))
	}
	if !slices.Contains(Formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format %q: want one of %s", c.Output.Format, strings.Join(Formats, ", ")))
	}
	return errors.Join(errs...)
}

// Path returns flagValue, or the value of $CFRONT_CONFIG when flagValue is
// empty.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}

// schema constrains every config document. Keys are optional; missing ones
// keep their defaults.
const schema = `
	log?: close({
		level?:   "debug" | "info" | "warn" | "error"
		file?:    string
		journal?: bool
	})
	output?: close({
		format?: "text" | "json" | "yaml"
		color?:  bool
	})
`

// Load reads the file at path over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := decode(cfg, path, content); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(cfg *Config, path string, content []byte) error {
	ctx := cuecontext.New()

	var value cue.Value
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml", ".yaml", ".yml":
		data := map[string]interface{}{}
		var err error
		if ext == ".toml" {
			err = toml.Unmarshal(content, &data)
		} else {
			err = yaml.Unmarshal(content, &data)
		}
		if err != nil {
			return err
		}
		value = ctx.Encode(data)

	case ".cue":
		value = ctx.CompileBytes(content, cue.Filename(path))

	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	if err := value.Err(); err != nil {
		return err
	}

	s := ctx.CompileString("close({" + schema + "})")
	if err := s.Err(); err != nil {
		return err
	}
	value = s.Unify(value)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return value.Decode(cfg)
}
