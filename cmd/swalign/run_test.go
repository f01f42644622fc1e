package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/swalign/internal/config"
	"github.com/katalvlaran/swalign/internal/logger"
	"github.com/katalvlaran/swalign/report"
	"github.com/katalvlaran/swalign/scoring"
	"github.com/katalvlaran/swalign/wordlist"
)

// writeInput stores lines in a temp file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func defaults(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)

	return cfg
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(raw)
}

func TestRun_TextReport(t *testing.T) {
	in := writeInput(t, "GCATGCU\nXY\nGATTACA\n")
	out := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, run(context.Background(), in, out, defaults(t)))

	// words are sorted before pairing: GATTACA, GCATGCU, XY
	want := "GATTACA - GCATGCU\nScore: 2 Sequence(s): \"AT\" \"CA\"\n" +
		"GATTACA - XY\nScore: 0 Sequence(s):\n" +
		"GCATGCU - XY\nScore: 0 Sequence(s):\n"
	assert.Equal(t, want, readOutput(t, out))
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.txt")

	err := run(context.Background(), filepath.Join(dir, "nope.txt"), out, defaults(t))
	require.ErrorIs(t, err, wordlist.ErrOpen)
	assert.NoFileExists(t, out, "no output is created when the input cannot be read")
}

func TestRun_UnknownFormat(t *testing.T) {
	in := writeInput(t, "A\nB\n")
	out := filepath.Join(t.TempDir(), "report.txt")
	cfg := defaults(t)
	cfg.Format = "xml"

	err := run(context.Background(), in, out, cfg)
	require.ErrorIs(t, err, report.ErrUnknownFormat)
	assert.NoFileExists(t, out)
}

func TestRun_OutputNotWritable(t *testing.T) {
	in := writeInput(t, "A\nB\n")
	out := filepath.Join(t.TempDir(), "missing-dir", "report.txt")

	err := run(context.Background(), in, out, defaults(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output")
}

func TestRun_SingleWord(t *testing.T) {
	in := writeInput(t, "ALONE\n")
	out := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, run(context.Background(), in, out, defaults(t)))
	assert.Empty(t, readOutput(t, out), "no pairs, empty report")
}

func TestRun_JSONLAndMetrics(t *testing.T) {
	in := writeInput(t, "HELLO\n\nYELLOW\n")
	dir := t.TempDir()
	out := filepath.Join(dir, "report.jsonl")
	cfg := defaults(t)
	cfg.Format = report.FormatJSONL
	cfg.SkipBlank = true
	cfg.Workers = 2
	cfg.MetricsFile = filepath.Join(dir, "swalign.prom")

	require.NoError(t, run(context.Background(), in, out, cfg))
	assert.Equal(t, `{"a":"HELLO","b":"YELLOW","score":4,"sequences":["ELLO"]}`+"\n", readOutput(t, out))

	prom := readOutput(t, cfg.MetricsFile)
	assert.Contains(t, prom, "swalign_pairs_aligned_total 1")
	assert.Contains(t, prom, "swalign_best_score 4")
}

func TestRun_Cancelled(t *testing.T) {
	in := writeInput(t, "A\nB\nC\n")
	out := filepath.Join(t.TempDir(), "report.txt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, in, out, defaults(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, out, "a cancelled run leaves no partial report")

	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Empty(t, entries, "the temp file is removed")
}

func TestRun_FailureKeepsPreviousOutput(t *testing.T) {
	in := writeInput(t, "A\nB\nC\n")
	out := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(out, []byte("previous\n"), 0o600))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, run(ctx, in, out, defaults(t)))
	assert.Equal(t, "previous\n", readOutput(t, out))
}

func TestRun_ReplacesOutputOnSuccess(t *testing.T) {
	in := writeInput(t, "AB\nAB\n")
	out := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(out, []byte("previous\n"), 0o600))

	require.NoError(t, run(context.Background(), in, out, defaults(t)))
	assert.Equal(t, "AB - AB\nScore: 2 Sequence(s): \"AB\"\n", readOutput(t, out))

	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRun_TracePairs(t *testing.T) {
	in := writeInput(t, "A\nB\nC\n")

	tests := []struct {
		name  string
		trace bool
		want  int
	}{
		{name: "quiet by default", trace: false, want: 0},
		{name: "one entry per pair", trace: true, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			ctx := logger.WithLogger(context.Background(), zap.New(core))
			cfg := defaults(t)
			cfg.TracePairs = tt.trace

			require.NoError(t, run(ctx, in, filepath.Join(t.TempDir(), "report.txt"), cfg))
			assert.Equal(t, tt.want, logs.FilterMessage("pair aligned").Len())
		})
	}
}

func TestExecute_LogsCommandErrors(t *testing.T) {
	in := writeInput(t, "A\nB\n")
	out := filepath.Join(t.TempDir(), "report.txt")

	tests := []struct {
		name string
		args []string
		text string
	}{
		{name: "wrong argument count", args: []string{in}, text: "accepts 2 arg(s), received 1"},
		{name: "unknown flag", args: []string{"--nope", in, out}, text: "unknown flag: --nope"},
		{name: "missing input", args: []string{in + ".missing", out}, text: "cannot open input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			ctx := logger.WithLogger(context.Background(), zap.New(core))

			err := execute(ctx, tt.args)
			require.Error(t, err)

			failed := logs.FilterMessage("command failed").All()
			require.Len(t, failed, 1, "the error is reported exactly once")
			assert.Contains(t, failed[0].ContextMap()["error"], tt.text)
			assert.NoFileExists(t, out)
		})
	}
}

func TestRootCommand_FlagsOverrideConfig(t *testing.T) {
	in := writeInput(t, "BABA\nAABBA\n")
	dir := t.TempDir()
	out := filepath.Join(dir, "report.txt")
	cfgPath := filepath.Join(dir, "swalign.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: jsonl\nworkers: 1\n"), 0o600))

	cmd := rootCommand()
	cmd.SetArgs([]string{in, out, "-c", cfgPath, "-f", "text", "--match", "2", "--mismatch", "-1", "--gap", "-1"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, "AABBA - BABA\nScore: 5 Sequence(s): \"A?BA\"\n", readOutput(t, out))
}

func TestRootCommand_Errors(t *testing.T) {
	in := writeInput(t, "A\nB\n")
	out := filepath.Join(t.TempDir(), "report.txt")

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{name: "missing output argument", args: []string{in}},
		{name: "too many arguments", args: []string{in, out, "extra"}},
		{name: "positive gap", args: []string{in, out, "--gap", "3"}, is: scoring.ErrInvalidScheme},
		{name: "negative workers", args: []string{in, out, "-w", "-2"}},
		{name: "missing config file", args: []string{in, out, "-c", filepath.Join(t.TempDir(), "none.yml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := rootCommand()
			cmd.SetArgs(tt.args)
			err := cmd.ExecuteContext(context.Background())
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			assert.NoFileExists(t, out)
		})
	}
}
