package ports

import (
	"io"

	"github.com/passforge-dev/passforge-sdk/bundle/entities"
)

// BundleWriter packages manifest, signature, and assets into the archive
// layout the platform accepts. Returns the number of bytes written.
type BundleWriter interface {
	Write(w io.Writer, assets *entities.AssetCollection, manifest *entities.Manifest, signature *entities.Signature) (int64, error)
}
