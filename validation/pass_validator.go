package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	jsonschemav5 "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/passforge-dev/passforge-sdk/passdef"
)

const schemaName = "pass.schema.json"

// PassValidator implements DefinitionValidator with a schema reflected
// from the pass model and compiled once at construction.
type PassValidator struct {
	schema *jsonschemav5.Schema
}

// NewPassValidator builds the validator. It fails only if the reflected
// schema does not compile.
func NewPassValidator() (*PassValidator, error) {
	reflector := new(jsonschema.Reflector)
	reflector.ExpandedStruct = true

	reflected := reflector.Reflect(&passdef.Pass{})
	encoded, err := json.Marshal(reflected)
	if err != nil {
		return nil, fmt.Errorf("marshaling reflected schema: %w", err)
	}

	compiler := jsonschemav5.NewCompiler()
	if err := compiler.AddResource(schemaName, bytes.NewReader(encoded)); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &PassValidator{schema: schema}, nil
}

// Validate checks a JSON document against the pass schema. Malformed
// JSON is an error; schema violations are reported in the result.
func (v *PassValidator) Validate(data []byte) (*ValidationResult, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	err := v.schema.Validate(doc)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var verr *jsonschemav5.ValidationError
	if !errors.As(err, &verr) {
		return nil, err
	}
	return &ValidationResult{Valid: false, Errors: leafMessages(verr)}, nil
}

// leafMessages walks the cause tree and keeps only the most specific
// violations, with their instance locations.
func leafMessages(err *jsonschemav5.ValidationError) []string {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return []string{fmt.Sprintf("%s: %s", location, err.Message)}
	}

	var out []string
	for _, cause := range err.Causes {
		out = append(out, leafMessages(cause)...)
	}
	return out
}
