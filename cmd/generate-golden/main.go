// Command generate-golden regenerates the routine golden files used by the
// app tests from the default configuration.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/agbru/consolekata/internal/cli"
	"github.com/agbru/consolekata/internal/config"
	apperrors "github.com/agbru/consolekata/internal/errors"
	"github.com/agbru/consolekata/internal/orchestration"
	"github.com/agbru/consolekata/internal/routine"
	"github.com/agbru/consolekata/internal/ui"
)

func main() {
	dir := pflag.String("dir", filepath.Join("internal", "app", "testdata", "golden"), "Directory receiving the .golden files.")
	pflag.Parse()

	if err := generate(context.Background(), *dir); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
}

func generate(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	factory := routine.NewDefaultFactory()
	opts := config.DefaultConfig().ToRoutineOptions()

	files := map[string][]routine.Routine{orchestration.AllRoutines: factory.GetAll()}
	for _, r := range factory.GetAll() {
		files[r.Name()] = []routine.Routine{r}
	}

	for name, routines := range files {
		data, err := render(ctx, routines, opts)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		path := filepath.Join(dir, name+".golden")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, len(data))
	}
	return nil
}

// render produces exactly what "kata <name> --quiet" writes to stdout.
func render(ctx context.Context, routines []routine.Routine, opts routine.Options) ([]byte, error) {
	var buf bytes.Buffer
	if len(routines) == 1 {
		res := orchestration.Execute(ctx, routines[0], routine.Env{Out: &buf}, opts, nil)
		return buf.Bytes(), res.Err
	}

	ui.SetCurrentTheme(ui.NoColorTheme)
	results := orchestration.ExecuteAll(ctx, routines, routine.Env{}, opts, nil)
	if code := orchestration.AnalyzeResults(results, cli.CLIResultPresenter{}, &buf, nil); code != apperrors.ExitSuccess {
		return nil, fmt.Errorf("run all exited with code %d", code)
	}
	return buf.Bytes(), nil
}
