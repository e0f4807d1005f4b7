package entities

import "fmt"

// Signature is the detached signature container over the manifest's
// canonical bytes, as DER the platform verifier consumes directly.
type Signature struct {
	der []byte
}

// NewSignature wraps raw signature container bytes.
func NewSignature(der []byte) (*Signature, error) {
	if len(der) == 0 {
		return nil, fmt.Errorf("signature cannot be empty")
	}
	owned := make([]byte, len(der))
	copy(owned, der)
	return &Signature{der: owned}, nil
}

// Bytes returns a copy of the DER-encoded signature container.
func (s *Signature) Bytes() []byte {
	der := make([]byte, len(s.der))
	copy(der, s.der)
	return der
}

// Size returns the container length in bytes.
func (s *Signature) Size() int64 {
	return int64(len(s.der))
}
