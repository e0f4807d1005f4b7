// Package validation checks pass definitions against a JSON Schema
// before they enter the signing pipeline.
package validation

// DefinitionValidator validates raw pass definition documents.
type DefinitionValidator interface {
	// Validate checks the document against the pass schema.
	Validate(data []byte) (*ValidationResult, error)
}

// ValidationResult collects the outcome of a schema check.
type ValidationResult struct {
	Valid  bool
	Errors []string
}
