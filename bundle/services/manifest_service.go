// Package services holds the domain logic of the bundle pipeline.
package services

import (
	"github.com/passforge-dev/passforge-sdk/bundle/entities"
	"github.com/passforge-dev/passforge-sdk/bundle/values"
)

// ManifestService builds the signed manifest over an asset collection.
type ManifestService struct{}

// NewManifestService creates a manifest service.
func NewManifestService() *ManifestService {
	return &ManifestService{}
}

// Build digests every asset and assembles the canonical manifest:
// exactly one entry per asset, no extras, no omissions. The collection
// already enforces path uniqueness; Build re-validates defensively since
// a duplicate here would silently drop an entry from the signed bytes.
func (s *ManifestService) Build(assets *entities.AssetCollection) (*entities.Manifest, error) {
	entries := make(map[string]values.Digest, assets.Len())

	for _, asset := range assets.Assets() {
		path := asset.Path().String()
		if _, exists := entries[path]; exists {
			return nil, &entities.DuplicatePathError{Path: path}
		}
		entries[path] = asset.Digest()
	}

	return entities.NewManifest(entries)
}
