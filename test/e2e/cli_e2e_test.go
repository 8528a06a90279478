package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the kata binary and checks its observable behaviour.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "kata"
	if runtime.GOOS == "windows" {
		binName = "kata.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD.
	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/kata")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build kata: %v", err)
	}

	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantStdout string // exact match when wantExact
		wantExact  bool
		wantStderr string // substring match
		wantCode   int
	}{
		{
			name:       "Fibonacci default",
			args:       []string{"fib"},
			wantStdout: "5th Fibonacci number: 5\n",
			wantExact:  true,
		},
		{
			name:       "Fibonacci from stdin",
			args:       []string{"fib", "--stdin"},
			stdin:      "10\n",
			wantStdout: "10th Fibonacci number: 55\n",
			wantExact:  true,
		},
		{
			name:       "Fibonacci stdin parse failure",
			args:       []string{"fib", "--stdin"},
			stdin:      "abc\n",
			wantStderr: `cannot parse "abc"`,
			wantCode:   3,
		},
		{
			name:       "Non-positive index",
			args:       []string{"fib", "-n", "0"},
			wantStdout: "Invalid input!\n",
			wantExact:  true,
		},
		{
			name:       "Greeting",
			args:       []string{"hello"},
			wantStdout: "Hello World!\n",
			wantExact:  true,
		},
		{
			name:       "Countdown",
			args:       []string{"countdown"},
			wantStdout: "3!\n2!\n1!\nLIFTOFF!!!\n",
			wantExact:  true,
		},
		{
			name:       "Carol last line",
			args:       []string{"carol"},
			wantStdout: "and a Partridge in a Pear Tree\n\n",
		},
		{
			name:       "Run all",
			args:       []string{"all"},
			wantStdout: "== shadow ==",
			wantStderr: "Global Status: Success",
		},
		{
			name:       "Invalid day",
			args:       []string{"carol", "--day", "13"},
			wantStderr: "day must be between 0 and 12",
			wantCode:   4,
		},
		{
			name:       "Timeout",
			args:       []string{"countdown", "--from", "10", "--interval", "1s", "--timeout", "100ms"},
			wantStderr: "Timeout",
			wantCode:   2,
		},
		{
			name:       "Help",
			args:       []string{"--help"},
			wantStdout: "usage",
		},
		{
			name:       "Version flag",
			args:       []string{"--version"},
			wantStdout: "kata",
		},
		{
			name:       "Shell completion",
			args:       []string{"completion", "bash"},
			wantStdout: "bash completion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Stdin = strings.NewReader(tt.stdin)
			var stdout, stderr strings.Builder
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			err := cmd.Run()

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running kata: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}

			got := stdout.String()
			switch {
			case tt.wantExact && got != tt.wantStdout:
				t.Errorf("stdout = %q, want %q", got, tt.wantStdout)
			case !tt.wantExact && tt.wantStdout != "" &&
				!strings.Contains(strings.ToLower(got), strings.ToLower(tt.wantStdout)):
				t.Errorf("stdout missing %q:\n%s", tt.wantStdout, got)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, stderr.String())
			}
		})
	}
}
