package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agbru/consolekata/internal/cli"
	"github.com/agbru/consolekata/internal/config"
	apperrors "github.com/agbru/consolekata/internal/errors"
	"github.com/agbru/consolekata/internal/logging"
	"github.com/agbru/consolekata/internal/metrics"
	"github.com/agbru/consolekata/internal/orchestration"
	"github.com/agbru/consolekata/internal/routine"
	"github.com/agbru/consolekata/internal/ui"
)

// Application represents the kata application instance.
type Application struct {
	Config    config.AppConfig
	Factory   routine.Factory
	ErrWriter io.Writer
	In        io.Reader
	Logger    logging.Logger
	Recorder  *metrics.Recorder
	RunID     string

	root     *cobra.Command
	out      io.Writer
	exitCode int
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom routine factory.
func WithFactory(f routine.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithStdin sets the reader routines take input from. Defaults to os.Stdin.
func WithStdin(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// New creates an Application for args, where args[0] is the program name.
// Flags are parsed and resolved when Run executes the selected command.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		Config:    config.DefaultConfig(),
		ErrWriter: errWriter,
		In:        os.Stdin,
		Logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = routine.NewDefaultFactory()
	}
	if len(app.Factory.List()) == 0 {
		return nil, apperrors.NewConfigError("no routines registered")
	}

	programName := "kata"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	app.root = app.newRootCommand(programName)
	app.root.SetArgs(cmdArgs)
	return app, nil
}

// Run executes the selected command and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.out = out
	a.root.SetOut(out)
	a.root.SetErr(a.ErrWriter)
	a.root.SetIn(a.In)
	ui.InitTheme(!ui.IsTerminal(a.ErrWriter))

	if err := a.root.ExecuteContext(ctx); err != nil {
		if a.Config.NoColor {
			ui.InitTheme(true)
		}
		return apperrors.HandleError(err, a.ErrWriter, cli.CLIColorProvider{})
	}
	return a.exitCode
}

func (a *Application) newRootCommand(programName string) *cobra.Command {
	root := &cobra.Command{
		Use:   programName,
		Short: "A toolkit of small console routines",
		Long: "kata runs small deterministic console programs: a Fibonacci reporter, a cumulative\n" +
			"carol, a greeting, a countdown, binding and loop demonstrations.",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetVersionTemplate("{{.Name}} " + strings.TrimPrefix(VersionString(), "kata ") + "\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})
	config.BindGlobalFlags(root.PersistentFlags(), &a.Config)

	binders := map[string][]func(*pflag.FlagSet, *config.AppConfig){
		routine.NameFib:       {config.BindSequenceFlags},
		routine.NameCarol:     {config.BindCarolFlags},
		routine.NameCountdown: {config.BindCountdownFlags},
		routine.NameShadow:    {config.BindShadowFlags},
		routine.NameLoops:     {config.BindLoopFlags},
	}

	var allBinders []func(*pflag.FlagSet, *config.AppConfig)
	for _, r := range a.Factory.GetAll() {
		name := r.Name()
		cmd := &cobra.Command{
			Use:   name,
			Short: r.Summary(),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.runRoutines(cmd.Context(), name)
			},
		}
		for _, bind := range binders[name] {
			bind(cmd.Flags(), &a.Config)
			allBinders = append(allBinders, bind)
		}
		root.AddCommand(cmd)
	}

	all := &cobra.Command{
		Use:   orchestration.AllRoutines,
		Short: "Run every routine concurrently and print their output in name order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRoutines(cmd.Context(), orchestration.AllRoutines)
		},
	}
	for _, bind := range allBinders {
		bind(all.Flags(), &a.Config)
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Describe the available routines",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			styled := !a.Config.NoColor && ui.IsTerminal(a.out)
			return cli.RenderCatalog(a.Factory.GetAll(), a.out, styled)
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			PrintVersion(a.out)
			return nil
		},
	}

	root.AddCommand(all, list, version)
	return root
}

// setup resolves the configuration and prepares logging, theming and metrics.
func (a *Application) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Resolve(cmd.Flags(), &a.Config); err != nil {
		return err
	}
	a.Config = config.ApplyTerminalDefaults(a.Config, ui.IsTerminal(a.ErrWriter))
	ui.InitTheme(a.Config.NoColor)
	if ui.GetCurrentTheme().Name != ui.NoColorTheme.Name {
		ui.SetTheme(a.Config.Theme)
	}

	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	logger, err := logging.New(logging.Options{
		Backend:   a.Config.LogBackend,
		Level:     level,
		Writer:    a.ErrWriter,
		Component: "kata",
		Console:   true,
		NoColor:   a.Config.NoColor,
	})
	if err != nil {
		return apperrors.NewConfigError("%v", err)
	}

	a.RunID = uuid.NewString()
	a.Logger = logger.With(logging.String("run_id", a.RunID))
	a.Recorder = metrics.NewRecorder()
	return nil
}

// lifecycle bounds ctx by the configured timeout and SIGINT/SIGTERM.
func (a *Application) lifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// runRoutines executes name (a routine or "all") and records the exit code.
func (a *Application) runRoutines(ctx context.Context, name string) error {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	routines, err := orchestration.RoutinesToRun(name, a.Factory)
	if err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	names := make([]string, len(routines))
	for i, r := range routines {
		names[i] = r.Name()
	}

	a.Logger.Info("run started",
		logging.String("routines", strings.Join(names, ",")),
		logging.Duration("timeout", a.Config.Timeout))
	if a.Config.Verbose && !a.Config.Quiet {
		cli.PrintExecutionConfig(names, a.Config.Timeout, a.RunID, a.ErrWriter)
	}
	defer a.writeMetrics()

	var captured bytes.Buffer
	out := a.out
	if a.Config.OutputFile != "" {
		out = io.MultiWriter(a.out, &captured)
	}
	env := routine.Env{In: a.In, Out: out, Logger: a.Logger}
	opts := a.Config.ToRoutineOptions()

	if name == orchestration.AllRoutines {
		results := orchestration.ExecuteAll(ctx, routines, env, opts, a.Recorder)
		for i := range results {
			results[i].Err = a.timeoutError(results[i].Name, results[i].Err)
		}
		var summary io.Writer
		if !a.Config.Quiet {
			summary = a.ErrWriter
		}
		a.exitCode = orchestration.AnalyzeResults(results, cli.CLIResultPresenter{}, out, summary)
		if a.Config.Quiet && a.exitCode != apperrors.ExitSuccess {
			for _, res := range results {
				if res.Err != nil {
					apperrors.HandleError(res.Err, a.ErrWriter, cli.CLIColorProvider{})
					break
				}
			}
		}
		if a.exitCode != apperrors.ExitSuccess {
			return nil
		}
		return a.saveOutput(captured.Bytes(), names)
	}

	env, stop := orchestration.AttachStatus(env, name, a.statusReporter(name))
	res := orchestration.Execute(ctx, routines[0], env, opts, a.Recorder)
	stop()
	if res.Err != nil {
		return a.timeoutError(name, res.Err)
	}
	return a.saveOutput(captured.Bytes(), names)
}

// timeoutError reports a deadline failure as a TimeoutError carrying the
// configured limit. Other errors pass through unchanged.
func (a *Application) timeoutError(name string, err error) error {
	if !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return apperrors.TimeoutError{Operation: name, Limit: a.Config.Timeout}
}

// statusReporter returns a spinner for a paced countdown on an interactive
// stderr and a no-op reporter otherwise.
func (a *Application) statusReporter(name string) orchestration.StatusReporter {
	if name != routine.NameCountdown || a.Config.Interval <= 0 || a.Config.Quiet || !ui.IsTerminal(a.ErrWriter) {
		return orchestration.NullStatusReporter{}
	}
	return cli.NewSpinnerReporter(a.ErrWriter)
}

func (a *Application) saveOutput(content []byte, names []string) error {
	cfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: a.Config.Quiet}
	if err := cli.SaveOutput(content, names, cfg, a.ErrWriter); err != nil {
		return fmt.Errorf("saving output: %w", err)
	}
	return nil
}

func (a *Application) writeMetrics() {
	if a.Config.MetricsFile == "" {
		return
	}
	if err := a.Recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.Logger.Error("writing metrics file failed", err, logging.String("path", a.Config.MetricsFile))
		return
	}
	a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
}
