package config

import (
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/consolekata/internal/errors"
	"github.com/agbru/consolekata/internal/logging"
	"github.com/agbru/consolekata/internal/loops"
	"github.com/agbru/consolekata/internal/routine"
	"github.com/agbru/consolekata/internal/sequence"
	"github.com/agbru/consolekata/internal/shadowing"
	"github.com/agbru/consolekata/internal/ui"
)

// EnvPrefix prefixes every environment variable read by the application.
const EnvPrefix = "KATA_"

// DefaultTimeout bounds a whole invocation.
const DefaultTimeout = time.Minute

// Flag names shared by the command tree, the env table and the file layer.
const (
	FlagConfig      = "config"
	FlagLogLevel    = "log-level"
	FlagLogBackend  = "log-backend"
	FlagVerbose     = "verbose"
	FlagQuiet       = "quiet"
	FlagNoColor     = "no-color"
	FlagTheme       = "theme"
	FlagTimeout     = "timeout"
	FlagOutput      = "output"
	FlagMetricsFile = "metrics-file"
	FlagIndex       = "index"
	FlagStdin       = "stdin"
	FlagSequence    = "sequence"
	FlagDay         = "day"
	FlagFrom        = "from"
	FlagInterval    = "interval"
	FlagSeed        = "seed"
	FlagVariant     = "variant"
	FlagLoop        = "loop"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// ConfigFile is the optional YAML or TOML file path.
	ConfigFile string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogBackend is zerolog or zap.
	LogBackend string
	// Verbose forces the debug log level.
	Verbose bool
	// Quiet suppresses status output and the summary table.
	Quiet bool
	// NoColor disables ANSI colours on stderr.
	NoColor bool
	// Theme names the colour theme used when colour is enabled.
	Theme string
	// Timeout bounds the whole invocation.
	Timeout time.Duration
	// OutputFile, when set, receives a copy of the routine output.
	OutputFile string
	// MetricsFile, when set, receives the run metrics in Prometheus text format.
	MetricsFile string

	// N is the sequence index.
	N int64
	// Stdin makes the sequence routine read its index from standard input.
	Stdin bool
	// Sequence prints every term up to N.
	Sequence bool
	// Day selects one carol verse, 0 for all.
	Day int
	// From is the countdown's upper bound.
	From int
	// Interval paces the countdown.
	Interval time.Duration
	// Seed is the shadowing demo's starting value.
	Seed int
	// ShadowVariant selects the shadowing demo.
	ShadowVariant string
	// LoopVariant selects the loop demo.
	LoopVariant string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() AppConfig {
	return AppConfig{
		LogLevel:      "warn",
		LogBackend:    logging.BackendZerolog,
		Theme:         "dark",
		Timeout:       DefaultTimeout,
		N:             sequence.DefaultIndex,
		From:          loops.DefaultFrom,
		Seed:          shadowing.DefaultSeed,
		ShadowVariant: shadowing.VariantShadow,
		LoopVariant:   loops.VariantResult,
	}
}

// BindGlobalFlags registers the flags shared by every command.
func BindGlobalFlags(fs *pflag.FlagSet, c *AppConfig) {
	fs.StringVar(&c.ConfigFile, FlagConfig, c.ConfigFile, "Path to a YAML or TOML configuration file.")
	fs.StringVar(&c.LogLevel, FlagLogLevel, c.LogLevel, "Log level: debug, info, warn or error.")
	fs.StringVar(&c.LogBackend, FlagLogBackend, c.LogBackend, "Log backend: zerolog or zap.")
	fs.BoolVarP(&c.Verbose, FlagVerbose, "v", c.Verbose, "Enable debug logging.")
	fs.BoolVarP(&c.Quiet, FlagQuiet, "q", c.Quiet, "Suppress status output and summaries.")
	fs.BoolVar(&c.NoColor, FlagNoColor, c.NoColor, "Disable coloured output.")
	fs.StringVar(&c.Theme, FlagTheme, c.Theme, "Colour theme: dark, light or none.")
	fs.DurationVar(&c.Timeout, FlagTimeout, c.Timeout, "Maximum duration of the whole invocation.")
	fs.StringVarP(&c.OutputFile, FlagOutput, "o", c.OutputFile, "Also write routine output to this file.")
	fs.StringVar(&c.MetricsFile, FlagMetricsFile, c.MetricsFile, "Write run metrics to this file in Prometheus text format.")
}

// BindSequenceFlags registers the fib routine's flags.
func BindSequenceFlags(fs *pflag.FlagSet, c *AppConfig) {
	fs.Int64VarP(&c.N, FlagIndex, "n", c.N, "Index of the Fibonacci number to print.")
	fs.BoolVar(&c.Stdin, FlagStdin, c.Stdin, "Read the index from one line of standard input.")
	fs.BoolVar(&c.Sequence, FlagSequence, c.Sequence, "Print every term from F(1) to F(n).")
}

// BindCarolFlags registers the carol routine's flags.
func BindCarolFlags(fs *pflag.FlagSet, c *AppConfig) {
	fs.IntVar(&c.Day, FlagDay, c.Day, "Print only this day's verse (1-12); 0 prints all.")
}

// BindCountdownFlags registers the countdown routine's flags.
func BindCountdownFlags(fs *pflag.FlagSet, c *AppConfig) {
	fs.IntVar(&c.From, FlagFrom, c.From, "First number of the countdown.")
	fs.DurationVar(&c.Interval, FlagInterval, c.Interval, "Pause between numbers (0 disables pacing).")
}

// BindShadowFlags registers the shadow routine's flags.
func BindShadowFlags(fs *pflag.FlagSet, c *AppConfig) {
	fs.IntVar(&c.Seed, FlagSeed, c.Seed, "Starting value of x in the shadow variant.")
	fs.StringVar(&c.ShadowVariant, FlagVariant, c.ShadowVariant,
		"Demo variant: "+strings.Join(shadowing.Variants, ", ")+".")
}

// BindLoopFlags registers the loops routine's flags.
func BindLoopFlags(fs *pflag.FlagSet, c *AppConfig) {
	fs.StringVar(&c.LoopVariant, FlagLoop, c.LoopVariant,
		"Loop demo: "+strings.Join(loops.Variants, ", ")+".")
}

// Resolve layers the config file and environment onto c for every flag not
// set explicitly in fs, then validates the result.
func Resolve(fs *pflag.FlagSet, c *AppConfig) error {
	if !isFlagSet(fs, FlagConfig) {
		if path := getEnvString("CONFIG", ""); path != "" {
			c.ConfigFile = path
		}
	}
	if c.ConfigFile != "" {
		fc, err := LoadFile(c.ConfigFile)
		if err != nil {
			return err
		}
		if err := applyFileConfig(c, fc, fs); err != nil {
			return err
		}
	}
	if err := applyEnvOverrides(c, fs); err != nil {
		return err
	}
	if c.Verbose {
		c.LogLevel = "debug"
	}
	return c.Validate()
}

// Validate checks the configuration for semantic errors.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive, got %s", c.Timeout)
	}
	if c.Day < 0 || c.Day > 12 {
		return apperrors.NewConfigError("day must be between 0 and 12, got %d", c.Day)
	}
	if c.From < 0 {
		return apperrors.NewConfigError("countdown start must not be negative, got %d", c.From)
	}
	if c.Interval < 0 {
		return apperrors.NewConfigError("countdown interval must not be negative, got %s", c.Interval)
	}
	if !slices.Contains(shadowing.Variants, c.ShadowVariant) {
		return apperrors.NewConfigError("unknown shadow variant %q (want one of %s)",
			c.ShadowVariant, strings.Join(shadowing.Variants, ", "))
	}
	if !slices.Contains(loops.Variants, c.LoopVariant) {
		return apperrors.NewConfigError("unknown loop variant %q (want one of %s)",
			c.LoopVariant, strings.Join(loops.Variants, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.LogBackend != logging.BackendZerolog && c.LogBackend != logging.BackendZap {
		return apperrors.NewConfigError("unknown log backend %q (want %s or %s)",
			c.LogBackend, logging.BackendZerolog, logging.BackendZap)
	}
	if !slices.Contains(ui.ThemeNames, c.Theme) {
		return apperrors.NewConfigError("unknown theme %q (want one of %s)",
			c.Theme, strings.Join(ui.ThemeNames, ", "))
	}
	return nil
}

// ToRoutineOptions projects the configuration onto routine options.
func (c AppConfig) ToRoutineOptions() routine.Options {
	return routine.Options{
		N:             c.N,
		Stdin:         c.Stdin,
		Sequence:      c.Sequence,
		Day:           c.Day,
		From:          c.From,
		Interval:      c.Interval,
		Seed:          c.Seed,
		ShadowVariant: c.ShadowVariant,
		LoopVariant:   c.LoopVariant,
	}
}
