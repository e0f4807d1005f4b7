// Package signing implements the ports.ManifestSigner against the
// CMS/PKCS#7 detached-signature container the wallet platform verifies.
package signing

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"time"

	"go.mozilla.org/pkcs7"

	"github.com/passforge-dev/passforge-sdk/bundle/entities"
	"github.com/passforge-dev/passforge-sdk/bundle/ports"
)

// PKCS7Signer signs manifest bytes into a detached PKCS#7 container
// embedding the signer certificate and its chain.
type PKCS7Signer struct {
	now func() time.Time
}

// PKCS7SignerOption configures a PKCS7Signer.
type PKCS7SignerOption func(*PKCS7Signer)

// WithClock overrides the validity-check clock.
func WithClock(now func() time.Time) PKCS7SignerOption {
	return func(s *PKCS7Signer) { s.now = now }
}

// NewPKCS7Signer creates a signer with the given options.
func NewPKCS7Signer(opts ...PKCS7SignerOption) *PKCS7Signer {
	s := &PKCS7Signer{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign produces a detached signature over the exact manifest bytes.
// The manifest content is never embedded in the container. Backend
// failures are surfaced once; signing against a stateful credential
// store is not safe to retry blindly.
func (s *PKCS7Signer) Sign(ctx context.Context, manifest []byte, identity ports.SigningIdentity) (*entities.Signature, error) {
	if err := s.validateIdentity(identity); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, &entities.SigningBackendError{Err: err}
	}

	signedData, err := pkcs7.NewSignedData(manifest)
	if err != nil {
		return nil, &entities.SigningBackendError{Err: fmt.Errorf("create signed data: %w", err)}
	}
	signedData.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA256)

	config := pkcs7.SignerInfoConfig{}
	if err := signedData.AddSignerChain(identity.Certificate(), identity.Signer(), identity.Chain(), config); err != nil {
		return nil, &entities.SigningBackendError{Err: fmt.Errorf("add signer chain: %w", err)}
	}

	signedData.Detach()

	der, err := signedData.Finish()
	if err != nil {
		return nil, &entities.SigningBackendError{Err: fmt.Errorf("finish signature: %w", err)}
	}

	return entities.NewSignature(der)
}

// validateIdentity rejects identities the platform verifier would reject:
// missing parts, non-RSA keys, expired certificates, broken chains.
func (s *PKCS7Signer) validateIdentity(identity ports.SigningIdentity) error {
	if identity == nil {
		return &entities.UntrustedIdentityError{Reason: "no identity supplied"}
	}

	cert := identity.Certificate()
	if cert == nil {
		return &entities.UntrustedIdentityError{Reason: "identity has no certificate"}
	}

	signer := identity.Signer()
	if signer == nil {
		return &entities.UntrustedIdentityError{Reason: "identity has no private key handle"}
	}

	pub, ok := signer.Public().(*rsa.PublicKey)
	if !ok {
		return &entities.UnsupportedAlgorithmError{Algorithm: fmt.Sprintf("%T", signer.Public())}
	}

	certPub, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return &entities.UnsupportedAlgorithmError{Algorithm: fmt.Sprintf("%T", cert.PublicKey)}
	}
	if pub.N.Cmp(certPub.N) != 0 || pub.E != certPub.E {
		return &entities.UntrustedIdentityError{Reason: "private key does not match certificate"}
	}

	now := s.now()
	if err := checkValidity(cert, now); err != nil {
		return err
	}

	// Each chain link must have signed the one before it. Anchoring to the
	// platform root happens on the verifier's side; a broken link here
	// guarantees rejection, so fail early.
	previous := cert
	for _, intermediate := range identity.Chain() {
		if intermediate == nil {
			return &entities.UntrustedIdentityError{Reason: "chain contains a nil certificate"}
		}
		if err := checkValidity(intermediate, now); err != nil {
			return err
		}
		if err := previous.CheckSignatureFrom(intermediate); err != nil {
			return &entities.UntrustedIdentityError{
				Reason: fmt.Sprintf("certificate %q was not issued by %q: %v",
					previous.Subject.CommonName, intermediate.Subject.CommonName, err),
			}
		}
		previous = intermediate
	}

	return nil
}

func checkValidity(cert *x509.Certificate, now time.Time) error {
	if now.Before(cert.NotBefore) {
		return &entities.UntrustedIdentityError{
			Reason: fmt.Sprintf("certificate %q not valid until %s", cert.Subject.CommonName, cert.NotBefore),
		}
	}
	if now.After(cert.NotAfter) {
		return &entities.UntrustedIdentityError{
			Reason: fmt.Sprintf("certificate %q expired at %s", cert.Subject.CommonName, cert.NotAfter),
		}
	}
	return nil
}
