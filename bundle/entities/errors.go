package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrInvalidAsset is returned when an asset path is malformed.
	ErrInvalidAsset = errors.New("invalid asset")

	// ErrDuplicatePath is returned when two assets share a bundle path.
	ErrDuplicatePath = errors.New("duplicate asset path")

	// ErrUntrustedIdentity is returned when a signing identity is malformed,
	// expired, or its chain does not hold together.
	ErrUntrustedIdentity = errors.New("untrusted signing identity")

	// ErrUnsupportedAlgorithm is returned when the identity's key type is not
	// permitted by the platform's signature scheme.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

	// ErrSigningBackend is returned when the underlying cryptographic
	// operation fails. Never retried by the pipeline.
	ErrSigningBackend = errors.New("signing backend failure")

	// ErrReservedPathConflict is returned when an asset collides with a
	// reserved bundle entry name.
	ErrReservedPathConflict = errors.New("reserved bundle path conflict")
)

// InvalidAssetError indicates a malformed asset path or content.
type InvalidAssetError struct {
	Path   string
	Reason string
}

func (e *InvalidAssetError) Error() string {
	return fmt.Sprintf("invalid asset %q: %s", e.Path, e.Reason)
}

// Is implements error matching for errors.Is() checks.
func (e *InvalidAssetError) Is(target error) bool {
	return target == ErrInvalidAsset
}

// DuplicatePathError indicates two assets share a path.
type DuplicatePathError struct {
	Path string
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("duplicate asset path: %q", e.Path)
}

// Is implements error matching for errors.Is() checks.
func (e *DuplicatePathError) Is(target error) bool {
	return target == ErrDuplicatePath
}

// UntrustedIdentityError indicates the signing identity cannot be trusted.
type UntrustedIdentityError struct {
	Reason string
}

func (e *UntrustedIdentityError) Error() string {
	return fmt.Sprintf("untrusted signing identity: %s", e.Reason)
}

// Is implements error matching for errors.Is() checks.
func (e *UntrustedIdentityError) Is(target error) bool {
	return target == ErrUntrustedIdentity
}

// UnsupportedAlgorithmError indicates a key type the platform rejects.
type UnsupportedAlgorithmError struct {
	Algorithm string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported signing algorithm: %s", e.Algorithm)
}

// Is implements error matching for errors.Is() checks.
func (e *UnsupportedAlgorithmError) Is(target error) bool {
	return target == ErrUnsupportedAlgorithm
}

// SigningBackendError indicates the cryptographic backend failed.
type SigningBackendError struct {
	Err error
}

func (e *SigningBackendError) Error() string {
	return fmt.Sprintf("signing backend failure: %v", e.Err)
}

// Is implements error matching for errors.Is() checks.
func (e *SigningBackendError) Is(target error) bool {
	return target == ErrSigningBackend
}

// Unwrap exposes the backend's underlying error.
func (e *SigningBackendError) Unwrap() error {
	return e.Err
}

// ReservedPathConflictError indicates an asset uses a reserved entry name.
type ReservedPathConflictError struct {
	Path string
}

func (e *ReservedPathConflictError) Error() string {
	return fmt.Sprintf("asset path %q conflicts with a reserved bundle entry", e.Path)
}

// Is implements error matching for errors.Is() checks.
func (e *ReservedPathConflictError) Is(target error) bool {
	return target == ErrReservedPathConflict
}

// Stage identifies the pipeline stage that produced a failure.
type Stage string

// Pipeline stages, in execution order.
const (
	StageValidation Stage = "validation"
	StageManifest   Stage = "manifest"
	StageSigning    Stage = "signing"
	StagePackaging  Stage = "packaging"
)

// PipelineError wraps a stage failure with its provenance.
// The originating error kind stays reachable through errors.Is/As.
type PipelineError struct {
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("bundle pipeline failed at %s stage: %v", e.Stage, e.Err)
}

// Unwrap exposes the originating stage error.
func (e *PipelineError) Unwrap() error {
	return e.Err
}
