// Package parser provides functionality for parsing pass definitions.
package parser

import (
	"path/filepath"
	"strings"

	"github.com/passforge-dev/passforge-sdk/passdef"
)

// DefinitionParser parses raw pass definition bytes into a Pass.
type DefinitionParser interface {
	// Parse unmarshals definition bytes into a Pass and validates it.
	Parse(data []byte) (*passdef.Pass, error)
}

// ForPath picks a parser by file extension. JSON is the default for
// unknown extensions since pass.json is the canonical form.
func ForPath(path string) DefinitionParser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYamlDefinitionParser()
	default:
		return NewJSONDefinitionParser()
	}
}
