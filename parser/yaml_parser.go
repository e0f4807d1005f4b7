package parser

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/passforge-dev/passforge-sdk/passdef"
)

// YamlDefinitionParser implements DefinitionParser for YAML. Definitions
// authored in YAML use the same camelCase keys as the JSON wire format.
type YamlDefinitionParser struct{}

// NewYamlDefinitionParser creates a new YamlDefinitionParser.
func NewYamlDefinitionParser() DefinitionParser {
	return &YamlDefinitionParser{}
}

// Parse unmarshals YAML bytes into a Pass and validates it. The document
// is decoded generically and re-encoded as JSON so the Pass struct's JSON
// tags apply to YAML input as well.
func (p *YamlDefinitionParser) Parse(data []byte) (*passdef.Pass, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	doc, err := jsonCompatible(doc)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var pass passdef.Pass
	if err := json.Unmarshal(encoded, &pass); err != nil {
		return nil, err
	}
	if err := pass.Validate(); err != nil {
		return nil, err
	}
	return &pass, nil
}

// jsonCompatible rewrites yaml.v3's map[string]any values recursively,
// rejecting non-string keys that JSON cannot represent.
func jsonCompatible(v any) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[k] = converted
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string mapping key %v", k)
			}
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[key] = converted
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return v, nil
	}
}
