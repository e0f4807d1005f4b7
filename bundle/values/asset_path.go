package values

import (
	"fmt"
	"strings"
)

// AssetPath represents a validated bundle entry path.
// Enforces relative, slash-separated paths with no traversal segments.
type AssetPath struct {
	value string
}

// NewAssetPath creates an AssetPath with strict validation.
// A valid asset path must:
// - Be non-empty
// - Be relative (no leading slash)
// - Use forward slashes only
// - NOT contain ".", "..", or empty segments
func NewAssetPath(path string) (AssetPath, error) {
	if strings.TrimSpace(path) == "" {
		return AssetPath{}, fmt.Errorf("asset path cannot be empty")
	}

	if strings.ContainsRune(path, '\\') {
		return AssetPath{}, fmt.Errorf("asset path %q must use forward slashes", path)
	}

	if strings.HasPrefix(path, "/") {
		return AssetPath{}, fmt.Errorf("asset path %q must be relative", path)
	}

	// Security check: traversal and degenerate segments
	for _, segment := range strings.Split(path, "/") {
		switch segment {
		case "":
			return AssetPath{}, fmt.Errorf("asset path %q contains an empty segment", path)
		case ".", "..":
			return AssetPath{}, fmt.Errorf("asset path %q contains a traversal segment", path)
		}
	}

	return AssetPath{value: path}, nil
}

// MustNewAssetPath creates an AssetPath or panics.
func MustNewAssetPath(path string) AssetPath {
	p, err := NewAssetPath(path)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the slash-separated relative path.
func (p AssetPath) String() string {
	return p.value
}

// IsEmpty returns true if this is the zero value.
func (p AssetPath) IsEmpty() bool {
	return p.value == ""
}

// Equals checks if two asset paths are equal.
func (p AssetPath) Equals(other AssetPath) bool {
	return p.value == other.value
}

// Less reports whether p orders before other in the manifest's
// lexicographic total order.
func (p AssetPath) Less(other AssetPath) bool {
	return p.value < other.value
}
