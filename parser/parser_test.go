package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge-dev/passforge-sdk/parser"
)

const jsonDefinition = `{
  "formatVersion": 1,
  "passTypeIdentifier": "pass.com.oceanic.boarding",
  "teamIdentifier": "OCEANIC42",
  "serialNumber": "815-42",
  "organizationName": "Oceanic Airlines",
  "description": "Flight 815 boarding pass",
  "boardingPass": {
    "transitType": "PKTransitTypeAir",
    "primaryFields": [
      {"key": "origin", "label": "Sydney", "value": "SYD"}
    ]
  }
}`

const yamlDefinition = `formatVersion: 1
passTypeIdentifier: pass.com.oceanic.boarding
teamIdentifier: OCEANIC42
serialNumber: "815-42"
organizationName: Oceanic Airlines
description: Flight 815 boarding pass
boardingPass:
  transitType: PKTransitTypeAir
  primaryFields:
    - key: origin
      label: Sydney
      value: SYD
`

func TestJSONDefinitionParser_Parse(t *testing.T) {
	p := parser.NewJSONDefinitionParser()

	pass, err := p.Parse([]byte(jsonDefinition))
	require.NoError(t, err)
	assert.Equal(t, "815-42", pass.SerialNumber)
	require.NotNil(t, pass.BoardingPass)
	assert.Len(t, pass.BoardingPass.PrimaryFields, 1)

	_, err = p.Parse([]byte("{"))
	assert.Error(t, err)

	// well-formed JSON that is not a valid pass
	_, err = p.Parse([]byte(`{"formatVersion": 1}`))
	assert.Error(t, err)
}

func TestYamlDefinitionParser_Parse(t *testing.T) {
	p := parser.NewYamlDefinitionParser()

	pass, err := p.Parse([]byte(yamlDefinition))
	require.NoError(t, err)
	assert.Equal(t, "pass.com.oceanic.boarding", pass.PassTypeIdentifier)
	require.NotNil(t, pass.BoardingPass)
	assert.Equal(t, "SYD", pass.BoardingPass.PrimaryFields[0].Value)

	_, err = p.Parse([]byte("fields: [unterminated"))
	assert.Error(t, err)

	_, err = p.Parse([]byte("formatVersion: 1"))
	assert.Error(t, err)
}

func TestParsersAgree(t *testing.T) {
	fromJSON, err := parser.NewJSONDefinitionParser().Parse([]byte(jsonDefinition))
	require.NoError(t, err)
	fromYaml, err := parser.NewYamlDefinitionParser().Parse([]byte(yamlDefinition))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYaml)
}

func TestForPath(t *testing.T) {
	assert.IsType(t, parser.NewYamlDefinitionParser(), parser.ForPath("pass.yaml"))
	assert.IsType(t, parser.NewYamlDefinitionParser(), parser.ForPath("defs/Pass.YML"))
	assert.IsType(t, parser.NewJSONDefinitionParser(), parser.ForPath("pass.json"))
	assert.IsType(t, parser.NewJSONDefinitionParser(), parser.ForPath("pass"))
}
