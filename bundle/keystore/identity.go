// Package keystore loads signing identities from file-based keystores:
// PKCS#12 containers or PEM certificate/key pairs. It implements the
// credential collaborator side of ports.SigningIdentity; the pipeline
// itself never touches key files.
package keystore

import (
	"crypto"
	"crypto/x509"
	"fmt"
)

// Identity is a loaded signing identity. Implements ports.SigningIdentity.
type Identity struct {
	cert   *x509.Certificate
	chain  []*x509.Certificate
	signer crypto.Signer
}

// NewIdentity assembles an identity from parsed parts.
func NewIdentity(cert *x509.Certificate, chain []*x509.Certificate, signer crypto.Signer) (*Identity, error) {
	if cert == nil {
		return nil, fmt.Errorf("identity requires a certificate")
	}
	if signer == nil {
		return nil, fmt.Errorf("identity requires a private key")
	}
	return &Identity{cert: cert, chain: chain, signer: signer}, nil
}

// Certificate returns the end-entity certificate.
func (i *Identity) Certificate() *x509.Certificate {
	return i.cert
}

// Chain returns intermediate certificates, signer-first order.
func (i *Identity) Chain() []*x509.Certificate {
	return i.chain
}

// Signer returns the private-key handle.
func (i *Identity) Signer() crypto.Signer {
	return i.signer
}
