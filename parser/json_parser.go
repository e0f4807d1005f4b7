package parser

import (
	"encoding/json"

	"github.com/passforge-dev/passforge-sdk/passdef"
)

// JSONDefinitionParser implements DefinitionParser for JSON.
type JSONDefinitionParser struct{}

// NewJSONDefinitionParser creates a new JSONDefinitionParser.
func NewJSONDefinitionParser() DefinitionParser {
	return &JSONDefinitionParser{}
}

// Parse unmarshals JSON bytes into a Pass and validates it.
func (p *JSONDefinitionParser) Parse(data []byte) (*passdef.Pass, error) {
	var pass passdef.Pass
	if err := json.Unmarshal(data, &pass); err != nil {
		return nil, err
	}
	if err := pass.Validate(); err != nil {
		return nil, err
	}
	return &pass, nil
}
