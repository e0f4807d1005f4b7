// Package ports defines the boundaries between the bundle pipeline and its
// collaborators: credential stores, asset staging, and archive writing.
package ports

import (
	"crypto"
	"crypto/x509"
)

// SigningIdentity is an opaque signing capability: a private-key handle,
// its certificate, and intermediates toward a trusted root. The pipeline
// borrows it for one sign operation and never copies key material out of
// the crypto.Signer handle.
type SigningIdentity interface {
	// Certificate returns the signer's end-entity certificate.
	Certificate() *x509.Certificate

	// Chain returns intermediate certificates, signer-first order.
	Chain() []*x509.Certificate

	// Signer returns the private-key handle. The backing store (software
	// keystore, hardware token) stays behind this interface.
	Signer() crypto.Signer
}
