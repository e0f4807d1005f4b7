package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/passforge-dev/passforge-sdk/bundle/values"
)

// Manifest maps each asset path to its content digest. The canonical
// serialization is fixed at construction: a JSON object with keys in
// lexicographic order, so identical inputs always yield identical bytes.
// The signer signs exactly these bytes.
type Manifest struct {
	entries map[string]values.Digest
	encoded []byte
}

// NewManifest creates a manifest and its canonical serialization.
func NewManifest(entries map[string]values.Digest) (*Manifest, error) {
	owned := make(map[string]values.Digest, len(entries))
	paths := make([]string, 0, len(entries))
	for path, digest := range entries {
		if digest.IsEmpty() {
			return nil, fmt.Errorf("manifest entry %q has no digest", path)
		}
		owned[path] = digest
		paths = append(paths, path)
	}
	sort.Strings(paths)

	encoded, err := encodeManifest(paths, owned)
	if err != nil {
		return nil, err
	}

	return &Manifest{entries: owned, encoded: encoded}, nil
}

// encodeManifest writes the sorted path→hex-digest object by hand. A plain
// map marshal would also sort keys today, but the signature's stability
// must not hinge on an encoding/json implementation detail.
func encodeManifest(sortedPaths []string, entries map[string]values.Digest) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, path := range sortedPaths {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(path)
		if err != nil {
			return nil, fmt.Errorf("encode manifest key %q: %w", path, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(entries[path].Hex())
		if err != nil {
			return nil, fmt.Errorf("encode manifest value for %q: %w", path, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Digest returns the recorded digest for a path.
func (m *Manifest) Digest(path string) (values.Digest, bool) {
	d, ok := m.entries[path]
	return d, ok
}

// Len returns the number of manifest entries.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Paths returns the entry paths in canonical (lexicographic) order.
func (m *Manifest) Paths() []string {
	paths := make([]string, 0, len(m.entries))
	for path := range m.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Bytes returns a copy of the canonical serialization.
func (m *Manifest) Bytes() []byte {
	encoded := make([]byte, len(m.encoded))
	copy(encoded, m.encoded)
	return encoded
}

// ParseManifest decodes a serialized manifest back into entries.
// Used when re-verifying an unpacked bundle.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	entries := make(map[string]values.Digest, len(raw))
	for path, hexValue := range raw {
		digest, err := values.NewDigest("sha1", hexValue)
		if err != nil {
			return nil, fmt.Errorf("manifest entry %q: %w", path, err)
		}
		entries[path] = digest
	}
	return NewManifest(entries)
}
