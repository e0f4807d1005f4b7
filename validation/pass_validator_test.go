package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge-dev/passforge-sdk/passdef"
	"github.com/passforge-dev/passforge-sdk/validation"
)

func validDocument(t *testing.T) []byte {
	t.Helper()
	pass := &passdef.Pass{
		Description:        "ACME loyalty card",
		FormatVersion:      passdef.FormatVersion,
		OrganizationName:   "ACME",
		PassTypeIdentifier: "pass.com.acme.loyalty",
		SerialNumber:       "member-9",
		TeamIdentifier:     "ACME00001",
		StoreCard:          &passdef.Structure{},
	}
	data, err := pass.Encode()
	require.NoError(t, err)
	return data
}

func TestPassValidator_Validate(t *testing.T) {
	validator, err := validation.NewPassValidator()
	require.NoError(t, err)

	t.Run("ValidDocument", func(t *testing.T) {
		res, err := validator.Validate(validDocument(t))
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		res, err := validator.Validate([]byte(`{"formatVersion": 1}`))
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.NotEmpty(t, res.Errors)
	})

	t.Run("WrongType", func(t *testing.T) {
		res, err := validator.Validate([]byte(`{
			"formatVersion": "1",
			"passTypeIdentifier": "pass.com.acme.loyalty",
			"teamIdentifier": "ACME00001",
			"serialNumber": "member-9",
			"organizationName": "ACME",
			"description": "card",
			"storeCard": {}
		}`))
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.NotEmpty(t, res.Errors)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := validator.Validate([]byte("{"))
		assert.Error(t, err)
	})
}
