package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorAcceptsFlexibleSections(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	docs := []string{
		`{"summary": "A short bio."}`,
		`{"experience": [{"jobTitle": "Engineer"}]}`,
		`{"hero": {"name": "Dana"}, "skills": ["Go", "SQL"]}`,
		`{"experience": {"experienceItems": [{"jobTitle": "Engineer"}]}}`,
		`{"customSection": {"anything": true}}`,
	}
	for _, doc := range docs {
		assert.NoError(t, v.ValidateBytes([]byte(doc)), doc)
	}
}

func TestValidatorRejectsMalformedDocuments(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name string
		doc  string
	}{
		{name: "not an object", doc: `["a", "b"]`},
		{name: "empty object", doc: `{}`},
		{name: "known section with wrong type", doc: `{"hero": 42}`},
		{name: "item list with wrong item type", doc: `{"experience": [42]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.doc))
			require.Error(t, err)

			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateMap(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.ValidateMap(map[string]any{"summary": "bio"}))
	assert.Error(t, v.ValidateMap(map[string]any{}))
}
