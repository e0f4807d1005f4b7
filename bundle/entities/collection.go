package entities

import (
	"github.com/passforge-dev/passforge-sdk/bundle/values"
)

// AssetCollection is the aggregate root for one bundle's inputs: an
// insertion-ordered set of assets keyed by unique path. Constructed once
// from staged files and read-only for the rest of the pipeline.
type AssetCollection struct {
	order  []values.AssetPath
	byPath map[string]*Asset
}

// NewAssetCollection creates an empty collection.
func NewAssetCollection() *AssetCollection {
	return &AssetCollection{
		byPath: make(map[string]*Asset),
	}
}

// Add validates the path and inserts a new asset.
// Returns InvalidAssetError for malformed paths and DuplicatePathError
// when the path is already present.
func (c *AssetCollection) Add(path string, content []byte) error {
	assetPath, err := values.NewAssetPath(path)
	if err != nil {
		return &InvalidAssetError{Path: path, Reason: err.Error()}
	}
	return c.AddAsset(NewAsset(assetPath, content))
}

// AddAsset inserts an already-constructed asset, enforcing path uniqueness.
func (c *AssetCollection) AddAsset(asset *Asset) error {
	key := asset.Path().String()
	if _, exists := c.byPath[key]; exists {
		return &DuplicatePathError{Path: key}
	}

	c.byPath[key] = asset
	c.order = append(c.order, asset.Path())
	return nil
}

// Get retrieves an asset by path.
func (c *AssetCollection) Get(path string) (*Asset, bool) {
	asset, ok := c.byPath[path]
	return asset, ok
}

// Contains reports whether an asset exists at the given path.
func (c *AssetCollection) Contains(path string) bool {
	_, ok := c.byPath[path]
	return ok
}

// Len returns the number of assets.
func (c *AssetCollection) Len() int {
	return len(c.order)
}

// Assets returns the assets in insertion order.
func (c *AssetCollection) Assets() []*Asset {
	assets := make([]*Asset, 0, len(c.order))
	for _, path := range c.order {
		assets = append(assets, c.byPath[path.String()])
	}
	return assets
}

// Paths returns the asset paths in insertion order.
func (c *AssetCollection) Paths() []values.AssetPath {
	paths := make([]values.AssetPath, len(c.order))
	copy(paths, c.order)
	return paths
}
