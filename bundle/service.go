// Package bundle orchestrates the pass-bundling pipeline: digesting staged
// assets into a canonical manifest, signing the manifest bytes, and
// packaging manifest + signature + assets into the archive the wallet
// platform accepts.
package bundle

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/passforge-dev/passforge-sdk/bundle/archive"
	"github.com/passforge-dev/passforge-sdk/bundle/entities"
	"github.com/passforge-dev/passforge-sdk/bundle/ports"
	"github.com/passforge-dev/passforge-sdk/bundle/services"
	"github.com/passforge-dev/passforge-sdk/bundle/signing"
)

// PassFileName is the pass-definition entry the platform requires.
const PassFileName = "pass.json"

// Service sequences the bundle pipeline. Stages run strictly in order,
// each consuming the previous stage's output; the first failure short-
// circuits and is wrapped with its stage provenance.
type Service struct {
	manifests *services.ManifestService
	signer    ports.ManifestSigner
	writer    ports.BundleWriter
	logger    *slog.Logger

	requirePassFile bool
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithSigner sets the manifest signer.
func WithSigner(s ports.ManifestSigner) ServiceOption {
	return func(svc *Service) { svc.signer = s }
}

// WithWriter sets the bundle writer.
func WithWriter(w ports.BundleWriter) ServiceOption {
	return func(svc *Service) { svc.writer = w }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(svc *Service) { svc.logger = l }
}

// WithoutPassFileCheck skips the pass.json presence check, for callers
// assembling bundles the platform never consumes directly (fixtures,
// template archives).
func WithoutPassFileCheck() ServiceOption {
	return func(svc *Service) { svc.requirePassFile = false }
}

// NewService creates a bundle service. Defaults: PKCS#7 signer, zip
// writer, slog.Default().
func NewService(opts ...ServiceOption) *Service {
	svc := &Service{
		manifests:       services.NewManifestService(),
		signer:          signing.NewPKCS7Signer(),
		writer:          archive.NewZipWriter(),
		logger:          slog.Default(),
		requirePassFile: true,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Produce runs the full pipeline over the collection and returns the
// finished bundle, entirely in memory. On any stage failure the error is
// a *entities.PipelineError preserving the originating kind, and no
// partial artifact exists.
func (s *Service) Produce(ctx context.Context, assets *entities.AssetCollection, identity ports.SigningIdentity) (*entities.Bundle, error) {
	if err := s.validate(assets); err != nil {
		return nil, &entities.PipelineError{Stage: entities.StageValidation, Err: err}
	}

	manifest, err := s.manifests.Build(assets)
	if err != nil {
		return nil, &entities.PipelineError{Stage: entities.StageManifest, Err: err}
	}
	s.logger.DebugContext(ctx, "manifest built", "entries", manifest.Len())

	signature, err := s.signer.Sign(ctx, manifest.Bytes(), identity)
	if err != nil {
		return nil, &entities.PipelineError{Stage: entities.StageSigning, Err: err}
	}
	s.logger.DebugContext(ctx, "manifest signed", "signature_bytes", signature.Size())

	var buf bytes.Buffer
	if _, err := s.writer.Write(&buf, assets, manifest, signature); err != nil {
		return nil, &entities.PipelineError{Stage: entities.StagePackaging, Err: err}
	}

	bundle := entities.NewBundle(buf.Bytes(), manifest)
	s.logger.InfoContext(ctx, "bundle produced",
		"assets", assets.Len(), "size_bytes", bundle.Size())
	return bundle, nil
}

// ProduceFile runs Produce and writes the archive to path atomically:
// the file appears complete or not at all.
func (s *Service) ProduceFile(ctx context.Context, assets *entities.AssetCollection, identity ports.SigningIdentity, path string) (*entities.Bundle, error) {
	bundle, err := s.Produce(ctx, assets, identity)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create temporary bundle file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := bundle.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("write bundle: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("close bundle file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("finalize bundle file: %w", err)
	}

	s.logger.InfoContext(ctx, "bundle written", "path", path)
	return bundle, nil
}

// ProduceFrom stages assets through the source, then runs Produce.
func (s *Service) ProduceFrom(ctx context.Context, source ports.AssetSource, identity ports.SigningIdentity) (*entities.Bundle, error) {
	assets, err := source.Load(ctx)
	if err != nil {
		return nil, &entities.PipelineError{Stage: entities.StageValidation, Err: err}
	}
	return s.Produce(ctx, assets, identity)
}

func (s *Service) validate(assets *entities.AssetCollection) error {
	if assets == nil || assets.Len() == 0 {
		return &entities.InvalidAssetError{Path: "", Reason: "asset collection is empty"}
	}
	if s.requirePassFile && !assets.Contains(PassFileName) {
		return &entities.InvalidAssetError{Path: PassFileName, Reason: "pass definition missing from assets"}
	}
	return nil
}
