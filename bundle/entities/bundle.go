package entities

import "io"

// Bundle is the final signed, compressed archive artifact. Immutable after
// creation; owned by the caller thereafter.
type Bundle struct {
	data     []byte
	manifest *Manifest
}

// NewBundle wraps a completed archive with the manifest it embeds.
func NewBundle(data []byte, manifest *Manifest) *Bundle {
	return &Bundle{data: data, manifest: manifest}
}

// Data returns the archive bytes. Callers must not modify the slice.
func (b *Bundle) Data() []byte {
	return b.data
}

// Size returns the archive length in bytes.
func (b *Bundle) Size() int64 {
	return int64(len(b.data))
}

// Manifest returns the manifest that was signed into the bundle.
func (b *Bundle) Manifest() *Manifest {
	return b.manifest
}

// WriteTo writes the archive to w.
func (b *Bundle) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data)
	return int64(n), err
}
