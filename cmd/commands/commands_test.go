package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urlscout/urlscout-cli/internal/cli"
	"github.com/urlscout/urlscout-cli/internal/testutil"
	"github.com/urlscout/urlscout-cli/pkg/dataset"
	"github.com/urlscout/urlscout-cli/pkg/files"
	"github.com/urlscout/urlscout-cli/pkg/models"
	"github.com/urlscout/urlscout-cli/pkg/search"
)

var testRecords = testutil.SampleRecords()

func setupProject(t *testing.T) string {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	env.InitProject(testRecords, nil)
	return env.TempDir
}

// execute runs sub under a root carrying the persistent flags
func execute(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "urlscout", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().StringP("output", "o", "text", "Output format")
	root.AddCommand(sub)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{sub.Name()}, args...))

	err := root.Execute()
	return buf.String(), err
}

func capturePrinters(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	cli.SetIO(buf, buf, bytes.NewReader(nil))
	t.Cleanup(func() {
		cli.SetIO(os.Stdout, os.Stderr, os.Stdin)
		cli.SetGlobalFlags(false, false, false)
	})
	return buf
}

func TestSearchCommand(t *testing.T) {
	setupProject(t)

	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
		wantErr     error
	}{
		{
			name:        "substring match",
			args:        []string{"a.com"},
			contains:    []string{"https://a.com/1", "file"},
			notContains: []string{"https://b.com/2"},
		},
		{
			name:     "no match",
			args:     []string{"zzz"},
			contains: []string{"No match found for the entered URL."},
		},
		{
			name:     "case sensitive",
			args:     []string{"A.COM"},
			contains: []string{"No match found"},
		},
		{
			name:    "whitespace rejected",
			args:    []string{"  "},
			wantErr: search.ErrEmptyQuery,
		},
		{
			name:    "strict rejects fragment",
			args:    []string{"--strict", "a.com"},
			wantErr: search.ErrInvalidURL,
		},
		{
			name:     "strict accepts full url",
			args:     []string{"--strict", "https://b.com/2"},
			contains: []string{"https://b.com/2", "folder"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewSearchCommand(), tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestSearchCommandJSON(t *testing.T) {
	setupProject(t)

	out, err := execute(t, NewSearchCommand(), "b.com", "-o", "json")
	require.NoError(t, err)

	var got models.Dataset
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, testRecords[1:], got.URLs)
}

func TestSearchCommandInvalidOutput(t *testing.T) {
	setupProject(t)

	_, err := execute(t, NewSearchCommand(), "a.com", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestSearchCommandSQLiteDataset(t *testing.T) {
	dir := setupProject(t)
	dbPath := filepath.Join(dir, "urls.db")
	require.NoError(t, dataset.WriteSQLite(t.Context(), dbPath, testRecords))

	out, err := execute(t, NewSearchCommand(), "--dataset", dbPath, "b.com")
	require.NoError(t, err)
	assert.Contains(t, out, "https://b.com/2")
	assert.NotContains(t, out, "https://a.com/1")
}

func TestListCommand(t *testing.T) {
	setupProject(t)

	out, err := execute(t, NewListCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "https://a.com/1")
	assert.Contains(t, out, "https://b.com/2")

	out, err = execute(t, NewListCommand(), "--limit", "1", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "https://a.com/1")
	assert.NotContains(t, out, "https://b.com/2")

	_, err = execute(t, NewListCommand(), "--limit", "-1")
	assert.Error(t, err)
}

func TestListCommandGeneratedSource(t *testing.T) {
	setupProject(t)

	out, err := execute(t, NewListCommand(), "--source", "memory", "--size", "7", "--seed", "3", "--latency", "0", "-o", "json")
	require.NoError(t, err)

	var got models.Dataset
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, dataset.Generate(7, 3), got.URLs)
}

func TestShowCommand(t *testing.T) {
	setupProject(t)

	out, err := execute(t, NewShowCommand(), "1")
	require.NoError(t, err)
	assert.Contains(t, out, "https://b.com/2")
	assert.Contains(t, out, "folder")

	_, err = execute(t, NewShowCommand(), "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 9 not found")

	_, err = execute(t, NewShowCommand(), "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid record id")
}

func TestCopyCommand(t *testing.T) {
	setupProject(t)
	printed := capturePrinters(t)

	var copied string
	oldWrite := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { writeClipboard = oldWrite }()

	_, err := execute(t, NewCopyCommand(), "0")
	require.NoError(t, err)
	assert.Equal(t, "https://a.com/1", copied)
	assert.Contains(t, printed.String(), "copied to clipboard")
}

func TestGenerateCommand(t *testing.T) {
	dir := setupProject(t)
	capturePrinters(t)

	for _, name := range []string{"out.yaml", "out.json", "out.db"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)

			_, err := execute(t, NewGenerateCommand(), "--count", "5", "--seed", "9", "--out", path)
			require.NoError(t, err)

			settings := models.DatasetSettings{Source: models.SourceFile, Path: path}
			if filepath.Ext(name) == ".db" {
				settings.Source = models.SourceSQLite
			}
			provider, closeFn, err := dataset.Open(t.Context(), settings, nil)
			require.NoError(t, err)
			defer closeFn()

			records, err := provider.Search(t.Context(), "")
			require.NoError(t, err)
			assert.Equal(t, dataset.Generate(5, 9), records)
		})
	}
}

func TestGenerateCommandRefusesOverwrite(t *testing.T) {
	setupProject(t)
	capturePrinters(t)

	// confirmation reads EOF and defaults to no
	_, err := execute(t, NewGenerateCommand(), "--count", "3")
	require.ErrorIs(t, err, errAborted)

	records, err := files.ReadDataset(files.DatasetPath())
	require.NoError(t, err)
	assert.Equal(t, testRecords, records)

	_, err = execute(t, NewGenerateCommand(), "--count", "3", "--force")
	require.NoError(t, err)

	records, err = files.ReadDataset(files.DatasetPath())
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestGenerateCommandBadExtension(t *testing.T) {
	setupProject(t)

	_, err := execute(t, NewGenerateCommand(), "--out", "urls.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dataset extension")
}

func TestInitCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)
	printed := capturePrinters(t)

	_, err := execute(t, NewInitCommand(), "--seed", "1")
	require.NoError(t, err)

	settings, err := files.ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.SourceFile, settings.Dataset.Source)

	records, err := files.ReadDataset(files.DatasetPath())
	require.NoError(t, err)
	assert.Len(t, records, dataset.DefaultSize)
	assert.Contains(t, printed.String(), "Created")

	// a second run keeps what is there
	_, err = execute(t, NewInitCommand())
	require.NoError(t, err)
	again, err := files.ReadDataset(files.DatasetPath())
	require.NoError(t, err)
	assert.Equal(t, records, again)
	assert.Contains(t, printed.String(), "Keeping existing")
}

func TestDatasetFlagsApply(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantSource string
		wantPath   string
		wantErr    bool
	}{
		{name: "no flags", args: nil, wantSource: models.SourceMemory},
		{name: "yaml path implies file", args: []string{"--dataset", "urls.yaml"}, wantSource: models.SourceFile, wantPath: "urls.yaml"},
		{name: "db path implies sqlite", args: []string{"--dataset", "urls.db"}, wantSource: models.SourceSQLite, wantPath: "urls.db"},
		{name: "explicit source wins", args: []string{"--source", "file", "--dataset", "urls.db"}, wantSource: models.SourceFile, wantPath: "urls.db"},
		{name: "unknown source", args: []string{"--source", "redis"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flags DatasetFlags
			cmd := &cobra.Command{Use: "x"}
			flags.Register(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))

			settings := models.DefaultSettings()
			err := flags.Apply(cmd, settings)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, settings.Dataset.Source)
			assert.Equal(t, tt.wantPath, settings.Dataset.Path)
		})
	}
}
