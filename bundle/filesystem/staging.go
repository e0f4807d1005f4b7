// Package filesystem stages source directories into asset collections.
// The pipeline core receives already-resolved path→content pairs; this is
// the collaborator that resolves them.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/passforge-dev/passforge-sdk/bundle/entities"
)

// Files the platform's composer tooling drops into pass source
// directories that must never end up in a bundle.
var defaultExcludes = []string{"**/.DS_Store", "**/*.orig"}

// DirectorySource implements ports.AssetSource over a .pass source
// directory, with doublestar glob filters.
type DirectorySource struct {
	dir     string
	include []string
	exclude []string
}

// SourceOption configures a DirectorySource.
type SourceOption func(*DirectorySource)

// WithInclude restricts staging to files matching any of the patterns.
func WithInclude(patterns ...string) SourceOption {
	return func(s *DirectorySource) { s.include = patterns }
}

// WithExclude skips files matching any of the patterns, in addition to
// the default excludes.
func WithExclude(patterns ...string) SourceOption {
	return func(s *DirectorySource) { s.exclude = append(s.exclude, patterns...) }
}

// NewDirectorySource creates a source rooted at dir.
func NewDirectorySource(dir string, opts ...SourceOption) *DirectorySource {
	s := &DirectorySource{
		dir:     dir,
		include: []string{"**"},
		exclude: append([]string(nil), defaultExcludes...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load walks the source directory and builds the asset collection.
// Paths are slash-separated and relative to the root; the collection's
// validation rejects anything that could escape the bundle.
func (s *DirectorySource) Load(ctx context.Context) (*entities.AssetCollection, error) {
	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return nil, fmt.Errorf("open source directory %q: %w", s.dir, err)
	}
	defer func() { _ = root.Close() }()

	assets := entities.NewAssetCollection()
	fsys := root.FS()

	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		match, err := s.matches(path)
		if err != nil {
			return err
		}
		if !match {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}
		return assets.Add(path, content)
	})
	if err != nil {
		return nil, fmt.Errorf("stage %q: %w", s.dir, err)
	}

	return assets, nil
}

func (s *DirectorySource) matches(path string) (bool, error) {
	for _, pattern := range s.exclude {
		skip, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if skip {
			return false, nil
		}
	}

	for _, pattern := range s.include {
		keep, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("include pattern %q: %w", pattern, err)
		}
		if keep {
			return true, nil
		}
	}
	return false, nil
}
