package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetCollectionAdd(t *testing.T) {
	c := NewAssetCollection()

	require.NoError(t, c.Add("pass.json", []byte(`{"formatVersion":1}`)))
	require.NoError(t, c.Add("icon.png", []byte{0x89, 0x50, 0x4e, 0x47}))
	require.NoError(t, c.Add("en.lproj/pass.strings", []byte(`"gate" = "Gate";`)))

	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Contains("icon.png"))
	assert.False(t, c.Contains("logo.png"))

	asset, ok := c.Get("pass.json")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"formatVersion":1}`), asset.Content())
}

func TestAssetCollectionRejectsDuplicates(t *testing.T) {
	c := NewAssetCollection()
	require.NoError(t, c.Add("manifest-data.json", []byte("a")))

	err := c.Add("manifest-data.json", []byte("b"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicatePath))

	var dup *DuplicatePathError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "manifest-data.json", dup.Path)

	// First insertion stays intact
	asset, _ := c.Get("manifest-data.json")
	assert.Equal(t, []byte("a"), asset.Content())
	assert.Equal(t, 1, c.Len())
}

func TestAssetCollectionRejectsInvalidPaths(t *testing.T) {
	c := NewAssetCollection()

	for _, path := range []string{"", "/abs.png", "../escape.png", `win\icon.png`} {
		err := c.Add(path, []byte("x"))
		require.Error(t, err, "path %q", path)
		assert.True(t, errors.Is(err, ErrInvalidAsset), "path %q", path)
	}
	assert.Equal(t, 0, c.Len())
}

func TestAssetCollectionInsertionOrder(t *testing.T) {
	c := NewAssetCollection()
	require.NoError(t, c.Add("zulu.png", []byte("z")))
	require.NoError(t, c.Add("alpha.png", []byte("a")))

	paths := c.Paths()
	require.Len(t, paths, 2)
	assert.Equal(t, "zulu.png", paths[0].String())
	assert.Equal(t, "alpha.png", paths[1].String())
}

func TestAssetContentIsolation(t *testing.T) {
	content := []byte("original")
	c := NewAssetCollection()
	require.NoError(t, c.Add("file.txt", content))

	content[0] = 'X'

	asset, _ := c.Get("file.txt")
	assert.Equal(t, []byte("original"), asset.Content())
}
