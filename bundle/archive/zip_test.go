package archive

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge-dev/passforge-sdk/bundle/entities"
	"github.com/passforge-dev/passforge-sdk/bundle/services"
)

func buildFixture(t *testing.T) (*entities.AssetCollection, *entities.Manifest, *entities.Signature) {
	t.Helper()

	assets := entities.NewAssetCollection()
	require.NoError(t, assets.Add("pass.json", []byte(`{"formatVersion":1}`)))
	require.NoError(t, assets.Add("icon.png", []byte{0x89, 0x50, 0x4e, 0x47}))
	require.NoError(t, assets.Add("en.lproj/pass.strings", []byte(`"gate" = "Gate";`)))

	manifest, err := services.NewManifestService().Build(assets)
	require.NoError(t, err)

	signature, err := entities.NewSignature([]byte{0x30, 0x82, 0x01, 0x00})
	require.NoError(t, err)

	return assets, manifest, signature
}

func TestZipRoundTrip(t *testing.T) {
	assets, manifest, signature := buildFixture(t)

	var buf bytes.Buffer
	n, err := NewZipWriter().Write(&buf, assets, manifest, signature)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	contents, err := Read(buf.Bytes())
	require.NoError(t, err)

	// Manifest and signature stored byte-exact.
	assert.Equal(t, manifest.Bytes(), contents.Manifest)
	assert.Equal(t, signature.Bytes(), contents.Signature)

	// Every asset at its original path with unmodified content.
	require.Len(t, contents.Assets, assets.Len())
	for _, asset := range assets.Assets() {
		assert.Equal(t, asset.Content(), contents.Assets[asset.Path().String()])
	}
}

func TestZipDeterminism(t *testing.T) {
	assets, manifest, signature := buildFixture(t)

	var first, second bytes.Buffer
	_, err := NewZipWriter().Write(&first, assets, manifest, signature)
	require.NoError(t, err)
	_, err = NewZipWriter().Write(&second, assets, manifest, signature)
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestZipReservedPathConflict(t *testing.T) {
	for _, reserved := range []string{ManifestFileName, SignatureFileName} {
		assets := entities.NewAssetCollection()
		require.NoError(t, assets.Add(reserved, []byte("rogue")))

		manifest, err := entities.NewManifest(nil)
		require.NoError(t, err)
		signature, err := entities.NewSignature([]byte{0x30})
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = NewZipWriter().Write(&buf, assets, manifest, signature)
		require.Error(t, err, "reserved name %q", reserved)
		assert.True(t, errors.Is(err, entities.ErrReservedPathConflict))

		var conflict *entities.ReservedPathConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, reserved, conflict.Path)
	}
}

func TestZipStoredAssets(t *testing.T) {
	assets, manifest, signature := buildFixture(t)

	var buf bytes.Buffer
	_, err := NewZipWriter(WithStoredAssets()).Write(&buf, assets, manifest, signature)
	require.NoError(t, err)

	contents, err := Read(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, manifest.Bytes(), contents.Manifest)
}

func TestReadRejectsMissingReservedEntries(t *testing.T) {
	_, err := Read([]byte("not a zip"))
	assert.Error(t, err)
}
