package archive

import (
	"bytes"
	"fmt"
	"io"

	"archive/zip"

	"github.com/passforge-dev/passforge-sdk/bundle/entities"
	"github.com/passforge-dev/passforge-sdk/bundle/values"
)

// Contents is an unpacked bundle: the raw manifest and signature plus the
// original assets keyed by path.
type Contents struct {
	Manifest  []byte
	Signature []byte
	Assets    map[string][]byte
}

// Read unpacks a bundle archive. Entries with traversal paths are rejected
// rather than skipped; a bundle we produced never contains them.
func Read(data []byte) (*Contents, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	contents := &Contents{Assets: make(map[string][]byte)}
	for _, file := range reader.File {
		content, err := readEntry(file)
		if err != nil {
			return nil, err
		}

		switch file.Name {
		case ManifestFileName:
			contents.Manifest = content
		case SignatureFileName:
			contents.Signature = content
		default:
			if _, err := values.NewAssetPath(file.Name); err != nil {
				return nil, &entities.InvalidAssetError{Path: file.Name, Reason: err.Error()}
			}
			contents.Assets[file.Name] = content
		}
	}

	if contents.Manifest == nil {
		return nil, fmt.Errorf("archive has no %s entry", ManifestFileName)
	}
	if contents.Signature == nil {
		return nil, fmt.Errorf("archive has no %s entry", SignatureFileName)
	}
	return contents, nil
}

func readEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open archive entry %q: %w", file.Name, err)
	}
	defer func() { _ = rc.Close() }()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read archive entry %q: %w", file.Name, err)
	}
	return content, nil
}
