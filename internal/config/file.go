package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/consolekata/internal/errors"
)

// FileConfig is the on-disk configuration. Unset keys leave the defaults in
// place; durations are strings such as "250ms".
type FileConfig struct {
	LogLevel    *string `yaml:"log_level" toml:"log_level"`
	LogBackend  *string `yaml:"log_backend" toml:"log_backend"`
	Quiet       *bool   `yaml:"quiet" toml:"quiet"`
	NoColor     *bool   `yaml:"no_color" toml:"no_color"`
	Theme       *string `yaml:"theme" toml:"theme"`
	Timeout     *string `yaml:"timeout" toml:"timeout"`
	Output      *string `yaml:"output" toml:"output"`
	MetricsFile *string `yaml:"metrics_file" toml:"metrics_file"`

	Fib struct {
		N        *int64 `yaml:"n" toml:"n"`
		Stdin    *bool  `yaml:"stdin" toml:"stdin"`
		Sequence *bool  `yaml:"sequence" toml:"sequence"`
	} `yaml:"fib" toml:"fib"`

	Carol struct {
		Day *int `yaml:"day" toml:"day"`
	} `yaml:"carol" toml:"carol"`

	Countdown struct {
		From     *int    `yaml:"from" toml:"from"`
		Interval *string `yaml:"interval" toml:"interval"`
	} `yaml:"countdown" toml:"countdown"`

	Shadow struct {
		Seed    *int    `yaml:"seed" toml:"seed"`
		Variant *string `yaml:"variant" toml:"variant"`
	} `yaml:"shadow" toml:"shadow"`

	Loops struct {
		Variant *string `yaml:"variant" toml:"variant"`
	} `yaml:"loops" toml:"loops"`
}

// LoadFile decodes the file at path as YAML (.yaml, .yml) or TOML (.toml).
// Unknown keys are rejected.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigError("reading config file: %v", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
			return nil, apperrors.NewConfigError("parsing %s: %v", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &fc)
		if err != nil {
			return nil, apperrors.NewConfigError("parsing %s: %v", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, apperrors.NewConfigError("parsing %s: unknown key %q", path, undecoded[0].String())
		}
	default:
		return nil, apperrors.NewConfigError("unsupported config file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
	return &fc, nil
}

// applyFileConfig copies every set file value into c unless the matching flag
// was given on the command line.
func applyFileConfig(c *AppConfig, fc *FileConfig, fs *pflag.FlagSet) error {
	setString(fs, FlagLogLevel, fc.LogLevel, &c.LogLevel)
	setString(fs, FlagLogBackend, fc.LogBackend, &c.LogBackend)
	setString(fs, FlagOutput, fc.Output, &c.OutputFile)
	setString(fs, FlagMetricsFile, fc.MetricsFile, &c.MetricsFile)
	setString(fs, FlagVariant, fc.Shadow.Variant, &c.ShadowVariant)
	setString(fs, FlagLoop, fc.Loops.Variant, &c.LoopVariant)

	setBool(fs, FlagQuiet, fc.Quiet, &c.Quiet)
	setBool(fs, FlagNoColor, fc.NoColor, &c.NoColor)
	setString(fs, FlagTheme, fc.Theme, &c.Theme)
	setBool(fs, FlagStdin, fc.Fib.Stdin, &c.Stdin)
	setBool(fs, FlagSequence, fc.Fib.Sequence, &c.Sequence)

	setInt(fs, FlagDay, fc.Carol.Day, &c.Day)
	setInt(fs, FlagFrom, fc.Countdown.From, &c.From)
	setInt(fs, FlagSeed, fc.Shadow.Seed, &c.Seed)
	if fc.Fib.N != nil && !isFlagSet(fs, FlagIndex) {
		c.N = *fc.Fib.N
	}

	if err := setDuration(fs, FlagTimeout, fc.Timeout, &c.Timeout); err != nil {
		return err
	}
	return setDuration(fs, FlagInterval, fc.Countdown.Interval, &c.Interval)
}

func setString(fs *pflag.FlagSet, flag string, v *string, dst *string) {
	if v != nil && !isFlagSet(fs, flag) {
		*dst = *v
	}
}

func setBool(fs *pflag.FlagSet, flag string, v *bool, dst *bool) {
	if v != nil && !isFlagSet(fs, flag) {
		*dst = *v
	}
}

func setInt(fs *pflag.FlagSet, flag string, v *int, dst *int) {
	if v != nil && !isFlagSet(fs, flag) {
		*dst = *v
	}
}

func setDuration(fs *pflag.FlagSet, flag string, v *string, dst *time.Duration) error {
	if v == nil || isFlagSet(fs, flag) {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return apperrors.NewConfigError("invalid %s in config file: %v", flag, err)
	}
	*dst = d
	return nil
}
