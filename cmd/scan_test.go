package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrdkprj/supported/internal/collector"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under a temporary root and returns the root.
func writeTree(t *testing.T, files map[string]string) string {
	root := t.TempDir()
	for path, content := range files {
		full := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return root
}

func defaultOptions(dir string) scanOptions {
	return scanOptions{
		dir:     dir,
		pattern: collector.DefaultPattern,
		seed:    collector.DefaultExtension,
		format:  "list",
	}
}

var exampleTree = map[string]string{
	"langA/x.contribution.js": `var conf = ".a,.b";`,
	"langB/y.contribution.js": `var conf = ".c";`,
	"langC/readme.md":         `var conf = ".md";`,
}

// TestRunScanJSON checks membership and per-folder order, not overall folder order.
func TestRunScanJSON(t *testing.T) {
	opts := defaultOptions(writeTree(t, exampleTree))
	opts.format = "json"

	var out bytes.Buffer
	require.NoError(t, runScan(context.Background(), &out, opts))

	var exts []string
	require.NoError(t, json.Unmarshal(out.Bytes(), &exts))
	assert.Equal(t, ".txt", exts[0])
	assert.ElementsMatch(t, []string{".txt", ".a", ".b", ".c"}, exts)

	a := indexOf(exts, ".a")
	assert.Equal(t, ".b", exts[a+1], "tokens of one folder stay in split order")
}

func TestRunScanEmptyRoot(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runScan(context.Background(), &out, defaultOptions(t.TempDir())))
	assert.Equal(t, "['.txt']\n", out.String())
}

func TestRunScanMissingRoot(t *testing.T) {
	var out bytes.Buffer
	err := runScan(context.Background(), &out, defaultOptions(filepath.Join(t.TempDir(), "missing")))
	assert.ErrorIs(t, err, collector.ErrRootNotFound)
	assert.Empty(t, out.String(), "nothing is printed on failure")
}

func TestRunScanUnknownFormat(t *testing.T) {
	opts := defaultOptions(t.TempDir())
	opts.format = "xml"

	var out bytes.Buffer
	assert.Error(t, runScan(context.Background(), &out, opts))
	assert.Empty(t, out.String())
}

func TestRunScanFailFastPrintsNothing(t *testing.T) {
	root := writeTree(t, exampleTree)
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(root, "broken")))

	var out bytes.Buffer
	assert.Error(t, runScan(context.Background(), &out, defaultOptions(root)))
	assert.Empty(t, out.String())

	opts := defaultOptions(root)
	opts.keepGoing = true
	opts.format = "lines"
	out.Reset()
	require.NoError(t, runScan(context.Background(), &out, opts))
	assert.Contains(t, out.String(), ".c\n")
}

func TestRunScanByFolder(t *testing.T) {
	opts := defaultOptions(writeTree(t, exampleTree))
	opts.byFolder = true

	var out bytes.Buffer
	require.NoError(t, runScan(context.Background(), &out, opts))

	assert.Contains(t, out.String(), "FOLDER")
	assert.Regexp(t, `langA\s+1\s+\.a \.b`, out.String())
	assert.Regexp(t, `langC\s+0`, out.String())
}

// TestScanCommand runs the command the way main does.
func TestScanCommand(t *testing.T) {
	root := writeTree(t, exampleTree)

	out, err := executeArgs(t, context.Background(), "scan", "--dir", root, "--format", "lines")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".txt", ".a", ".b", ".c"}, splitLines(out))
}

// executeArgs runs the root command with args and returns what it printed to stdout.
func executeArgs(t *testing.T, ctx context.Context, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		verbosity = int(logrus.WarnLevel)
	})

	err := Execute(ctx)
	return out.String(), err
}

func TestScanCommandCanceled(t *testing.T) {
	root := writeTree(t, exampleTree)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := executeArgs(t, ctx, "scan", "--dir", root)
	assert.ErrorIs(t, err, context.Canceled, "an interrupted scan must not look successful")
	assert.Empty(t, out)
}

func TestVerbosityRange(t *testing.T) {
	root := writeTree(t, exampleTree)

	tests := []struct {
		verbosity string
		wantErr   bool
	}{
		{verbosity: "-1", wantErr: true},
		{verbosity: "7", wantErr: true},
		{verbosity: "0"},
		{verbosity: "6"},
	}

	for _, tc := range tests {
		t.Run(tc.verbosity, func(t *testing.T) {
			out, err := executeArgs(t, context.Background(), "scan", "--dir", root, "--format", "list", "--verbosity="+tc.verbosity)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Empty(t, out)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "'.txt'")
		})
	}
}

func TestFormatsCommand(t *testing.T) {
	out, err := executeArgs(t, context.Background(), "formats")
	require.NoError(t, err)
	assert.Equal(t, "json\nlines\nlist\nyaml\n", out)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range bytes.Split(bytes.TrimSpace([]byte(s)), []byte("\n")) {
		lines = append(lines, string(line))
	}
	return lines
}
