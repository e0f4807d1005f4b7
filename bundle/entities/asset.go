package entities

import (
	"github.com/passforge-dev/passforge-sdk/bundle/values"
)

// Asset is one named, immutable file entry contributed to a bundle.
type Asset struct {
	path    values.AssetPath
	content []byte
}

// NewAsset creates an asset, copying the content so later mutation of the
// caller's slice cannot reach into the pipeline.
func NewAsset(path values.AssetPath, content []byte) *Asset {
	owned := make([]byte, len(content))
	copy(owned, content)
	return &Asset{path: path, content: owned}
}

// Path returns the asset's bundle-relative path.
func (a *Asset) Path() values.AssetPath {
	return a.path
}

// Content returns the asset's bytes. Callers must not modify the slice.
func (a *Asset) Content() []byte {
	return a.content
}

// Size returns the content length in bytes.
func (a *Asset) Size() int64 {
	return int64(len(a.content))
}

// Digest computes the asset's content digest.
func (a *Asset) Digest() values.Digest {
	return values.ComputeDigest(a.content)
}
