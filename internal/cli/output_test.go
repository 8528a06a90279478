package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutputToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	content := []byte("5th Fibonacci number: 5\n")

	testCases := []struct {
		name       string
		outputFile string
		checkFunc  func(t *testing.T, filePath string)
	}{
		{
			name:       "Write output to file",
			outputFile: filepath.Join(tmpDir, "out.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				data, err := os.ReadFile(filePath)
				require.NoError(t, err)
				s := string(data)
				assert.Contains(t, s, "# Routine: fib\n")
				assert.Contains(t, s, "# Lines: 1\n")
				assert.True(t, strings.HasSuffix(s, "\n\n5th Fibonacci number: 5\n"))
			},
		},
		{
			name:       "Empty output file (no write)",
			outputFile: "",
		},
		{
			name:       "Create nested directory",
			outputFile: filepath.Join(tmpDir, "nested", "dir", "out.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				_, err := os.Stat(filePath)
				assert.NoError(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := WriteOutputToFile(content, []string{"fib"}, OutputConfig{OutputFile: tc.outputFile})
			require.NoError(t, err)
			if tc.checkFunc != nil {
				tc.checkFunc(t, tc.outputFile)
			}
		})
	}
}

func TestWriteOutputToFile_Unwritable(t *testing.T) {
	t.Parallel()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := WriteOutputToFile([]byte("x\n"), nil, OutputConfig{OutputFile: filepath.Join(blocker, "out.txt")})
	assert.Error(t, err)
}

func TestWriteOutputHeader(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	generated := time.Date(2024, 12, 25, 8, 0, 0, 0, time.UTC)

	require.NoError(t, writeOutput(&buf, []byte("a\nb\n"), []string{"carol", "hello"}, generated))

	want := "# kata routine output\n" +
		"# Generated: 2024-12-25T08:00:00Z\n" +
		"# Routine: carol\n" +
		"# Routine: hello\n" +
		"# Lines: 2\n\n" +
		"a\nb\n"
	assert.Equal(t, want, buf.String())
}

func TestSaveOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "o.txt")

	var status bytes.Buffer
	require.NoError(t, SaveOutput([]byte("Hello World!\n"), []string{"hello"}, OutputConfig{OutputFile: path}, &status))
	assert.Contains(t, status.String(), "Output saved to: "+path)

	status.Reset()
	require.NoError(t, SaveOutput([]byte("Hello World!\n"), []string{"hello"}, OutputConfig{OutputFile: path, Quiet: true}, &status))
	assert.Empty(t, status.String())

	require.NoError(t, SaveOutput(nil, nil, OutputConfig{}, &status))
	assert.Empty(t, status.String())
}
