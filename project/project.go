// Package project provides the on-disk project file describing how a
// pass bundle is assembled: where assets live, which keystore signs
// them, and where the archive is written.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/passforge-dev/passforge-sdk/bundle/filesystem"
	"github.com/passforge-dev/passforge-sdk/bundle/keystore"
	"github.com/passforge-dev/passforge-sdk/bundle/ports"
)

// DefaultFileName is the conventional project file name.
const DefaultFileName = "passforge.yaml"

// Keystore locates the signing material for a project. Either a PKCS#12
// container (Path) or a PEM pair (Certificate/Key) is configured, not both.
type Keystore struct {
	// Path to a PKCS#12 container holding certificate, chain and key.
	Path string `yaml:"path,omitempty"`

	// Password for the PKCS#12 container. Prefer PasswordEnv; an empty
	// password falls back to an interactive prompt.
	Password string `yaml:"password,omitempty"`

	// PasswordEnv names an environment variable holding the password.
	PasswordEnv string `yaml:"passwordEnv,omitempty"`

	// Certificate and Key are PEM file paths, used instead of Path.
	Certificate string `yaml:"certificate,omitempty"`
	Key         string `yaml:"key,omitempty"`

	// Chain lists intermediate certificate PEM paths, outermost first.
	Chain []string `yaml:"chain,omitempty"`
}

// Project is the decoded project file.
type Project struct {
	// Name of the project, informational only.
	Name string `yaml:"name"`

	// SourceDir is the asset directory, relative to the project file.
	SourceDir string `yaml:"source"`

	// Include and Exclude are doublestar glob patterns applied to asset
	// paths. An empty Include means everything.
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`

	// Output is the archive path, relative to the project file.
	Output string `yaml:"output"`

	Keystore Keystore `yaml:"keystore"`

	// dir the project file was loaded from; relative paths resolve here.
	dir string
}

// Load reads and validates a project file.
func Load(path string) (*Project, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("opening project directory %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("opening project file %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var project Project
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&project); err != nil {
		return nil, fmt.Errorf("decoding project file %q: %w", path, err)
	}
	project.dir = dir

	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project file %q: %w", path, err)
	}
	return &project, nil
}

// Save writes the project file to the given path.
func (p *Project) Save(path string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return fmt.Errorf("opening directory for write %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.OpenFile(filepath.Base(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating project file %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	encoder := yaml.NewEncoder(file)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(p); err != nil {
		return fmt.Errorf("encoding project file: %w", err)
	}
	return nil
}

// Validate checks the project for the fields the pipeline needs.
func (p *Project) Validate() error {
	if p.SourceDir == "" {
		return fmt.Errorf("source directory is required")
	}
	if p.Output == "" {
		return fmt.Errorf("output path is required")
	}

	ks := p.Keystore
	hasP12 := ks.Path != ""
	hasPEM := ks.Certificate != "" || ks.Key != ""
	switch {
	case !hasP12 && !hasPEM:
		return fmt.Errorf("keystore requires either a PKCS#12 path or a PEM certificate/key pair")
	case hasP12 && hasPEM:
		return fmt.Errorf("keystore path and PEM certificate/key are mutually exclusive")
	case hasPEM && (ks.Certificate == "" || ks.Key == ""):
		return fmt.Errorf("PEM keystore requires both certificate and key")
	}
	return nil
}

// SourcePath returns the asset directory resolved against the project dir.
func (p *Project) SourcePath() string {
	return p.resolve(p.SourceDir)
}

// OutputPath returns the archive path resolved against the project dir.
func (p *Project) OutputPath() string {
	return p.resolve(p.Output)
}

// Source builds the asset source described by the project.
func (p *Project) Source() ports.AssetSource {
	opts := make([]filesystem.SourceOption, 0, 2)
	if len(p.Include) > 0 {
		opts = append(opts, filesystem.WithInclude(p.Include...))
	}
	if len(p.Exclude) > 0 {
		opts = append(opts, filesystem.WithExclude(p.Exclude...))
	}
	return filesystem.NewDirectorySource(p.SourcePath(), opts...)
}

// Identity loads the signing identity described by the keystore section.
// The prompter is consulted only for a PKCS#12 container with no password
// configured; pass nil to disable prompting.
func (p *Project) Identity(prompter keystore.PassphrasePrompter) (ports.SigningIdentity, error) {
	ks := p.Keystore
	if ks.Path != "" {
		password := ks.Password
		if password == "" && ks.PasswordEnv != "" {
			password = os.Getenv(ks.PasswordEnv)
		}
		if prompter == nil {
			return keystore.LoadPKCS12(p.resolve(ks.Path), password)
		}
		return keystore.LoadPKCS12Prompting(p.resolve(ks.Path), password, prompter)
	}

	chain := make([]string, len(ks.Chain))
	for i, c := range ks.Chain {
		chain[i] = p.resolve(c)
	}
	return keystore.LoadPEM(p.resolve(ks.Certificate), p.resolve(ks.Key), chain...)
}

func (p *Project) resolve(path string) string {
	if filepath.IsAbs(path) || p.dir == "" {
		return path
	}
	return filepath.Join(p.dir, path)
}
