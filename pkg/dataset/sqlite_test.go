package dataset

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteProvider(t *testing.T) *SQLiteProvider {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.db")
	require.NoError(t, WriteSQLite(context.Background(), path, twoRecords))

	p, err := OpenSQLite(context.Background(), path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

func TestSQLiteProviderSearch(t *testing.T) {
	p := newSQLiteProvider(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"substring match", "a.com", []string{"https://a.com/1"}},
		{"no match", "zzz", []string{}},
		{"empty matches all", "", []string{"https://a.com/1", "https://b.com/2"}},
		{"case sensitive", "A.COM", []string{}},
		{"like wildcards are literal", "%", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, urlsOf(got))
		})
	}
}

func TestSQLiteProviderMatchesMemoryProvider(t *testing.T) {
	records := Generate(50, 99)
	path := filepath.Join(t.TempDir(), "generated.db")
	require.NoError(t, WriteSQLite(context.Background(), path, records))

	sqlite, err := OpenSQLite(context.Background(), path, nil)
	require.NoError(t, err)
	defer sqlite.Close()
	memory := NewMemoryProvider(records, 0)

	for _, q := range []string{"", "http", ".com", "www.", "zzz"} {
		fromSQLite, err := sqlite.Search(context.Background(), q)
		require.NoError(t, err)
		fromMemory, err := memory.Search(context.Background(), q)
		require.NoError(t, err)

		assert.Equal(t, fromMemory, fromSQLite, "query %q", q)
	}
}

func TestSQLiteProviderCancelled(t *testing.T) {
	p := newSQLiteProvider(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := p.Search(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestWriteSQLiteReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.db")
	ctx := context.Background()

	require.NoError(t, WriteSQLite(ctx, path, Generate(10, 1)))
	require.NoError(t, WriteSQLite(ctx, path, twoRecords))

	p, err := OpenSQLite(ctx, path, nil)
	require.NoError(t, err)
	defer p.Close()

	got, err := p.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, twoRecords, got)
}

func TestOpenSQLiteErrors(t *testing.T) {
	_, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "missing.db"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database file does not exist")
}
