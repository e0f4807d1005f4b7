package keystore

import (
	"crypto"
	"fmt"
	"os"

	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

// PassphrasePrompter asks the user for a keystore passphrase when none
// was configured.
type PassphrasePrompter interface {
	IsInteractive() bool
	PromptPassphrase(keystorePath string) (string, error)
}

// LoadPKCS12 loads a signing identity from a PKCS#12 container.
// CA certificates bundled in the container become the identity's chain.
func LoadPKCS12(path, password string) (*Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keystore %q: %w", path, err)
	}

	key, cert, chain, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return nil, fmt.Errorf("decode keystore %q: %w", path, err)
	}

	signer, ok := key.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("keystore %q: private key type %T cannot sign", path, key)
	}

	return NewIdentity(cert, chain, signer)
}

// LoadPKCS12Prompting loads a PKCS#12 identity, asking the prompter for
// the passphrase when password is empty and a terminal is attached.
func LoadPKCS12Prompting(path, password string, prompter PassphrasePrompter) (*Identity, error) {
	if password == "" && prompter != nil && prompter.IsInteractive() {
		entered, err := prompter.PromptPassphrase(path)
		if err != nil {
			return nil, fmt.Errorf("read keystore passphrase: %w", err)
		}
		password = entered
	}
	return LoadPKCS12(path, password)
}
