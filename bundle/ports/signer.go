package ports

import (
	"context"

	"github.com/passforge-dev/passforge-sdk/bundle/entities"
)

// ManifestSigner produces a detached signature over the manifest's exact
// canonical bytes.
type ManifestSigner interface {
	// Sign signs manifest bytes with the given identity. Implementations
	// must not retry failed backend operations; the caller owns retry
	// policy. Backend timeouts surface as SigningBackendError.
	Sign(ctx context.Context, manifest []byte, identity SigningIdentity) (*entities.Signature, error)
}
