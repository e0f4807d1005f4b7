// Package archive packages bundles into the zip layout the wallet
// platform consumes, and unpacks them for re-verification.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/passforge-dev/passforge-sdk/bundle/entities"
)

// Reserved entry names fixed by the platform's consuming specification.
const (
	ManifestFileName  = "manifest.json"
	SignatureFileName = "signature"
)

// Entry metadata timestamp. A fixed value keeps archives byte-stable for
// identical inputs; the platform ignores entry times.
var entryTimestamp = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// ZipWriter implements ports.BundleWriter. Entry layout: manifest first,
// then signature, then assets in lexicographic path order.
type ZipWriter struct {
	method uint16
}

// ZipWriterOption configures a ZipWriter.
type ZipWriterOption func(*ZipWriter)

// WithStoredAssets disables compression. Compression is a size tradeoff
// only; stored bytes are identical either way.
func WithStoredAssets() ZipWriterOption {
	return func(w *ZipWriter) { w.method = zip.Store }
}

// NewZipWriter creates a writer with deflate compression.
func NewZipWriter(opts ...ZipWriterOption) *ZipWriter {
	w := &ZipWriter{method: zip.Deflate}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write packages manifest, signature, and every asset into w.
// Fails with ReservedPathConflictError if an asset uses a reserved name.
func (zw *ZipWriter) Write(w io.Writer, assets *entities.AssetCollection, manifest *entities.Manifest, signature *entities.Signature) (int64, error) {
	for _, reserved := range []string{ManifestFileName, SignatureFileName} {
		if assets.Contains(reserved) {
			return 0, &entities.ReservedPathConflictError{Path: reserved}
		}
	}

	counter := &countingWriter{w: w}
	archive := zip.NewWriter(counter)

	if err := zw.writeEntry(archive, ManifestFileName, manifest.Bytes()); err != nil {
		return counter.n, err
	}
	if err := zw.writeEntry(archive, SignatureFileName, signature.Bytes()); err != nil {
		return counter.n, err
	}

	sorted := assets.Assets()
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path().Less(sorted[j].Path())
	})
	for _, asset := range sorted {
		if err := zw.writeEntry(archive, asset.Path().String(), asset.Content()); err != nil {
			return counter.n, err
		}
	}

	if err := archive.Close(); err != nil {
		return counter.n, fmt.Errorf("finalize archive: %w", err)
	}
	return counter.n, nil
}

func (zw *ZipWriter) writeEntry(archive *zip.Writer, name string, content []byte) error {
	header := &zip.FileHeader{
		Name:     name,
		Method:   zw.method,
		Modified: entryTimestamp,
	}
	entry, err := archive.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create archive entry %q: %w", name, err)
	}
	if _, err := entry.Write(content); err != nil {
		return fmt.Errorf("write archive entry %q: %w", name, err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
