// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/consolekata/internal/errors"
)

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// isFlagSet reports whether a flag was explicitly set on the command line.
func isFlagSet(fs *pflag.FlagSet, name string) bool {
	if fs == nil {
		return false
	}
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// envOverride declares a single environment variable override. Each entry maps
// an env key (without the KATA_ prefix) to the flag it shadows and a function
// that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string) error
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"N", FlagIndex, func(c *AppConfig, v string) error {
		parsed, err := strconv.ParseInt(v, 10, 64)
		c.N = parsed
		return err
	}},
	{"DAY", FlagDay, func(c *AppConfig, v string) (err error) {
		c.Day, err = strconv.Atoi(v)
		return err
	}},
	{"FROM", FlagFrom, func(c *AppConfig, v string) (err error) {
		c.From, err = strconv.Atoi(v)
		return err
	}},
	{"SEED", FlagSeed, func(c *AppConfig, v string) (err error) {
		c.Seed, err = strconv.Atoi(v)
		return err
	}},

	// Duration overrides
	{"INTERVAL", FlagInterval, func(c *AppConfig, v string) (err error) {
		c.Interval, err = time.ParseDuration(v)
		return err
	}},
	{"TIMEOUT", FlagTimeout, func(c *AppConfig, v string) (err error) {
		c.Timeout, err = time.ParseDuration(v)
		return err
	}},

	// String overrides
	{"VARIANT", FlagVariant, func(c *AppConfig, v string) error {
		c.ShadowVariant = v
		return nil
	}},
	{"LOOP", FlagLoop, func(c *AppConfig, v string) error {
		c.LoopVariant = v
		return nil
	}},
	{"LOG_LEVEL", FlagLogLevel, func(c *AppConfig, v string) error {
		c.LogLevel = v
		return nil
	}},
	{"LOG_BACKEND", FlagLogBackend, func(c *AppConfig, v string) error {
		c.LogBackend = v
		return nil
	}},
	{"THEME", FlagTheme, func(c *AppConfig, v string) error {
		c.Theme = v
		return nil
	}},
	{"OUTPUT", FlagOutput, func(c *AppConfig, v string) error {
		c.OutputFile = v
		return nil
	}},
	{"METRICS_FILE", FlagMetricsFile, func(c *AppConfig, v string) error {
		c.MetricsFile = v
		return nil
	}},

	// Boolean overrides
	{"STDIN", FlagStdin, func(c *AppConfig, v string) (err error) {
		c.Stdin, err = parseBoolEnv(v)
		return err
	}},
	{"VERBOSE", FlagVerbose, func(c *AppConfig, v string) (err error) {
		c.Verbose, err = parseBoolEnv(v)
		return err
	}},
	{"QUIET", FlagQuiet, func(c *AppConfig, v string) (err error) {
		c.Quiet, err = parseBoolEnv(v)
		return err
	}},
	{"NO_COLOR", FlagNoColor, func(c *AppConfig, v string) (err error) {
		c.NoColor, err = parseBoolEnv(v)
		return err
	}},
}

// parseBoolEnv accepts "true", "1", "yes" as true and "false", "0", "no" as
// false (case-insensitive).
func parseBoolEnv(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line. A value
// that does not parse is a ConfigError naming the variable.
func applyEnvOverrides(c *AppConfig, fs *pflag.FlagSet) error {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		val := os.Getenv(EnvPrefix + o.envKey)
		if val == "" {
			continue
		}
		if err := o.apply(c, val); err != nil {
			return apperrors.NewConfigError("invalid value %q for %s%s: %v", val, EnvPrefix, o.envKey, err)
		}
	}
	return nil
}
