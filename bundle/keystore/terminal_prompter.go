package keystore

import (
	"os"

	"github.com/charmbracelet/huh"
)

// TerminalPrompter provides interactive terminal prompting for keystore
// passphrases.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a new TerminalPrompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *TerminalPrompter) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// PromptPassphrase asks the user for the keystore's passphrase.
// Input is masked; the passphrase is handed to the PKCS#12 decoder and
// never stored.
func (p *TerminalPrompter) PromptPassphrase(keystorePath string) (string, error) {
	var passphrase string

	err := huh.NewInput().
		Title("Keystore passphrase").
		Description(keystorePath).
		EchoMode(huh.EchoModePassword).
		Value(&passphrase).
		Run()
	if err != nil {
		return "", err
	}

	return passphrase, nil
}
