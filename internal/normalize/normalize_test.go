package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIsTotal(t *testing.T) {
	// Every input shape yields a Content; nothing errors or panics.
	inputs := []any{
		nil,
		"plain text",
		42,
		3.14,
		true,
		map[string]any{},
		map[string]any{"unknownField": "value"},
		map[string]any{"title": nil},
		[]any{"nested", "list"},
	}

	for _, input := range inputs {
		c := Normalize(input, "experience")
		assert.NotNil(t, c.Tags)
		assert.NotNil(t, c.Metadata)
	}
}

func TestNormalizeString(t *testing.T) {
	c := Normalize("  A passionate builder.  ", "summary")
	assert.Equal(t, "A passionate builder.", c.Description)
	assert.Empty(t, c.Primary)
	assert.False(t, c.IsEmpty())
}

func TestNormalizeExperienceItem(t *testing.T) {
	c := Normalize(map[string]any{
		"jobTitle":     "Backend Engineer",
		"companyName":  "Acme",
		"dateRange":    "2020-2024",
		"description":  "Built the billing platform.",
		"technologies": []any{"Go", "Postgres"},
		"companyUrl":   "https://acme.example",
	}, "experience")

	assert.Equal(t, "Backend Engineer", c.Primary)
	assert.Equal(t, "Acme", c.Secondary)
	assert.Equal(t, "2020-2024", c.Tertiary)
	assert.Equal(t, "Built the billing platform.", c.Description)
	assert.Equal(t, []string{"Go", "Postgres"}, c.Tags)
	assert.Equal(t, "https://acme.example", c.URL)
}

func TestNormalizeFieldPriority(t *testing.T) {
	// jobTitle outranks title in the experience table
	c := Normalize(map[string]any{
		"jobTitle": "Engineer",
		"title":    "Should not win",
	}, "experience")
	assert.Equal(t, "Engineer", c.Primary)
}

func TestNormalizeCaseInsensitiveFallback(t *testing.T) {
	c := Normalize(map[string]any{"JobTitle": "Engineer"}, "experience")
	assert.Equal(t, "Engineer", c.Primary)
}

func TestNormalizeUnresolvedItem(t *testing.T) {
	c := Normalize(map[string]any{"zzz": map[string]any{"nested": true}}, "experience")
	assert.True(t, c.IsEmpty())
}

func TestNormalizeRawRoundTrip(t *testing.T) {
	item := map[string]any{"jobTitle": "Engineer", "responsibilities": []any{"a"}}
	c := Normalize(item, "experience")
	assert.Equal(t, item, c.Raw())

	// Non-map items have no raw form
	assert.Nil(t, Normalize("text", "summary").Raw())
}

func TestBullets(t *testing.T) {
	tests := []struct {
		name     string
		item     any
		expected []string
	}{
		{
			name:     "responsibilities key",
			item:     map[string]any{"responsibilities": []any{"Shipped v1", "Led reviews"}},
			expected: []string{"Shipped v1", "Led reviews"},
		},
		{
			name:     "achievements key",
			item:     map[string]any{"achievements": []any{"Award"}},
			expected: []string{"Award"},
		},
		{
			name:     "string list",
			item:     map[string]any{"highlights": []string{"One", "Two"}},
			expected: []string{"One", "Two"},
		},
		{
			name:     "no bullet keys",
			item:     map[string]any{"jobTitle": "Engineer"},
			expected: nil,
		},
		{
			name:     "not a map",
			item:     "bare string",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Bullets(tt.item))
		})
	}
}

func TestNormalizeTypedStringSlices(t *testing.T) {
	c := Normalize(map[string]any{
		"title":        []string{"Lead", "Engineer"},
		"technologies": []string{"Go", "", " Postgres "},
	}, "experience")

	assert.Equal(t, "Lead, Engineer", c.Primary)
	assert.Equal(t, []string{"Go", "Postgres"}, c.Tags)
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "comma separated", input: "Go, Python, SQL", expected: []string{"Go", "Python", "SQL"}},
		{name: "bullet separated", input: "Go • Python • SQL", expected: []string{"Go", "Python", "SQL"}},
		{name: "pipe separated", input: "Go | Python", expected: []string{"Go", "Python"}},
		{name: "no separator", input: "Go", expected: []string{"Go"}},
		{name: "blank", input: "  ", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitTags(tt.input))
		})
	}
}

func TestFlattenedScalars(t *testing.T) {
	// Numbers extracted from JSON are float64; whole values must not grow
	// a trailing ".0" when flattened into a display string.
	c := Normalize(map[string]any{"yearsOfExperience": 7.0, "category": "Backend"}, "skills")
	assert.Equal(t, "7", c.Tertiary)
}
