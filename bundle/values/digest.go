package values

import (
	"crypto/sha1" //nolint:gosec // Digest algorithm is fixed by the wallet platform's manifest verifier.
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Digest represents a content hash with algorithm.
type Digest struct {
	algorithm string // sha1, sha256
	value     string // hex-encoded hash
}

var digestSizes = map[string]int{
	"sha1":   sha1.Size,
	"sha256": sha256.Size,
}

// NewDigest creates a digest from algorithm and hex value.
func NewDigest(algorithm, hexValue string) (Digest, error) {
	size, ok := digestSizes[algorithm]
	if !ok {
		return Digest{}, fmt.Errorf("unsupported digest algorithm: %s", algorithm)
	}

	raw, err := hex.DecodeString(hexValue)
	if err != nil {
		return Digest{}, fmt.Errorf("invalid hex digest value: %w", err)
	}
	if len(raw) != size {
		return Digest{}, fmt.Errorf("digest value has %d bytes, %s requires %d", len(raw), algorithm, size)
	}

	return Digest{
		algorithm: algorithm,
		value:     strings.ToLower(hexValue),
	}, nil
}

// ParseDigest parses a digest string (e.g., "sha1:abc123...").
func ParseDigest(s string) (Digest, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return Digest{}, fmt.Errorf("invalid digest format: %s", s)
	}
	return NewDigest(parts[0], parts[1])
}

// ComputeDigest hashes asset content with the platform's manifest
// algorithm (SHA-1). Pure function of the content bytes.
func ComputeDigest(content []byte) Digest {
	hash := sha1.Sum(content) //nolint:gosec // Mandated by the manifest format.
	return Digest{algorithm: "sha1", value: hex.EncodeToString(hash[:])}
}

// ComputeDigestReader computes the SHA-1 digest of reader contents.
func ComputeDigestReader(r io.Reader) (Digest, error) {
	h := sha1.New() //nolint:gosec // Mandated by the manifest format.
	if _, err := io.Copy(h, r); err != nil {
		return Digest{}, err
	}
	return Digest{
		algorithm: "sha1",
		value:     hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// String returns the canonical digest string.
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.value)
}

// Algorithm returns the hash algorithm.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Hex returns the hex-encoded hash value as it appears in the manifest.
func (d Digest) Hex() string {
	return d.value
}

// IsEmpty returns true if this is the zero value.
func (d Digest) IsEmpty() bool {
	return d.value == ""
}

// Equals checks equality with another digest.
func (d Digest) Equals(other Digest) bool {
	return d.algorithm == other.algorithm && d.value == other.value
}

// Verify validates content matches this digest.
func (d Digest) Verify(content []byte) error {
	var computed Digest
	switch d.algorithm {
	case "sha1":
		computed = ComputeDigest(content)
	case "sha256":
		hash := sha256.Sum256(content)
		computed = Digest{algorithm: "sha256", value: hex.EncodeToString(hash[:])}
	default:
		return fmt.Errorf("unsupported algorithm: %s", d.algorithm)
	}

	if !d.Equals(computed) {
		return fmt.Errorf("digest mismatch: expected %s, got %s", d.String(), computed.String())
	}

	return nil
}
