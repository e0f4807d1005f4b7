package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSourceDir(t *testing.T, files map[string][]byte) string {
	t.Helper()

	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, content, 0o600))
	}
	return dir
}

func TestDirectorySourceLoad(t *testing.T) {
	dir := writeSourceDir(t, map[string][]byte{
		"pass.json":             []byte(`{"formatVersion":1}`),
		"icon.png":              {0x89, 0x50},
		"en.lproj/pass.strings": []byte(`"gate" = "Gate";`),
	})

	assets, err := NewDirectorySource(dir).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, assets.Len())
	assert.True(t, assets.Contains("pass.json"))
	assert.True(t, assets.Contains("en.lproj/pass.strings"))

	asset, ok := assets.Get("icon.png")
	require.True(t, ok)
	assert.Equal(t, []byte{0x89, 0x50}, asset.Content())
}

func TestDirectorySourceDefaultExcludes(t *testing.T) {
	dir := writeSourceDir(t, map[string][]byte{
		"pass.json":          []byte("{}"),
		".DS_Store":          []byte("junk"),
		"en.lproj/.DS_Store": []byte("junk"),
		"icon.png.orig":      []byte("junk"),
	})

	assets, err := NewDirectorySource(dir).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, assets.Len())
	assert.True(t, assets.Contains("pass.json"))
}

func TestDirectorySourceIncludeFilter(t *testing.T) {
	dir := writeSourceDir(t, map[string][]byte{
		"pass.json": []byte("{}"),
		"icon.png":  []byte("i"),
		"notes.txt": []byte("n"),
	})

	source := NewDirectorySource(dir, WithInclude("*.json", "*.png"))
	assets, err := source.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, assets.Len())
	assert.False(t, assets.Contains("notes.txt"))
}

func TestDirectorySourceExcludeFilter(t *testing.T) {
	dir := writeSourceDir(t, map[string][]byte{
		"pass.json":  []byte("{}"),
		"draft.json": []byte("{}"),
	})

	source := NewDirectorySource(dir, WithExclude("draft.*"))
	assets, err := source.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, assets.Len())
	assert.True(t, assets.Contains("pass.json"))
}

func TestDirectorySourceMissingDir(t *testing.T) {
	_, err := NewDirectorySource(filepath.Join(t.TempDir(), "nope")).Load(context.Background())
	assert.Error(t, err)
}

func TestDirectorySourceCancelledContext(t *testing.T) {
	dir := writeSourceDir(t, map[string][]byte{"pass.json": []byte("{}")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDirectorySource(dir).Load(ctx)
	assert.Error(t, err)
}
