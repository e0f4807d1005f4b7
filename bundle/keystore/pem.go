package keystore

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

// LoadPEM loads a signing identity from PEM files: the signer certificate,
// its private key (PKCS#1 or PKCS#8), and optional intermediate
// certificates, signer-first order.
func LoadPEM(certPath, keyPath string, chainPaths ...string) (*Identity, error) {
	cert, err := readCertificate(certPath)
	if err != nil {
		return nil, err
	}

	signer, err := readPrivateKey(keyPath)
	if err != nil {
		return nil, err
	}

	var chain []*x509.Certificate
	for _, path := range chainPaths {
		intermediate, err := readCertificate(path)
		if err != nil {
			return nil, err
		}
		chain = append(chain, intermediate)
	}

	return NewIdentity(cert, chain, signer)
}

func readCertificate(path string) (*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read certificate %q: %w", path, err)
	}

	block, _ := pem.Decode(data)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("certificate %q: no CERTIFICATE PEM block", path)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse certificate %q: %w", path, err)
	}
	return cert, nil
}

func readPrivateKey(path string) (crypto.Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read private key %q: %w", path, err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("private key %q: no PEM block", path)
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse private key %q: %w", path, err)
		}
		return key, nil
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse private key %q: %w", path, err)
		}
		signer, ok := key.(crypto.Signer)
		if !ok {
			return nil, fmt.Errorf("private key %q: type %T cannot sign", path, key)
		}
		return signer, nil
	default:
		return nil, fmt.Errorf("private key %q: unsupported PEM block %q", path, block.Type)
	}
}
