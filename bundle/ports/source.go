package ports

import (
	"context"

	"github.com/passforge-dev/passforge-sdk/bundle/entities"
)

// AssetSource stages external files into an AssetCollection.
// The pipeline core never walks a filesystem itself.
type AssetSource interface {
	Load(ctx context.Context) (*entities.AssetCollection, error)
}
