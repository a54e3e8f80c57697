package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeyardgit/TradeYard/internal/domain/catalog"
)

func TestParseResultPlainJSON(t *testing.T) {
	text := `{
		"title": "iPhone 13 Pro",
		"category": "electronics",
		"subcategory": "Phones & Tablets",
		"condition": "Used - Like New",
		"tags": ["phone", "apple"],
		"description": "A lightly used iPhone 13 Pro in excellent condition.",
		"confidence": 0.92
	}`

	result, err := parseResult(text)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 13 Pro", result.Title)
	assert.Equal(t, "electronics", result.Category)
	assert.Equal(t, "Phones & Tablets", result.Subcategory)
	assert.Equal(t, []string{"phone", "apple"}, result.Tags)
	assert.Equal(t, 0.92, result.Confidence)
}

func TestParseResultCodeFenced(t *testing.T) {
	text := "Here is the analysis:\n```json\n" +
		`{"title": "Gaming Chair", "category": "gaming", "subcategory": "Gaming Chairs", "confidence": 0.8}` +
		"\n```\nLet me know if you need more."

	result, err := parseResult(text)
	require.NoError(t, err)
	assert.Equal(t, "Gaming Chair", result.Title)
	assert.Equal(t, 0.8, result.Confidence)
}

func TestParseResultNoJSON(t *testing.T) {
	_, err := parseResult("I could not identify the product in this image.")
	assert.Error(t, err)
}

func TestParseResultMissingRequiredFields(t *testing.T) {
	_, err := parseResult(`{"title": "Something", "category": "electronics"}`)
	assert.Error(t, err)
}

func TestParseResultConfidenceDefaults(t *testing.T) {
	base := `{"title": "T", "category": "electronics", "subcategory": "Phones & Tablets", "confidence": %s}`

	cases := map[string]string{
		"out of range high": "1.5",
		"negative":          "-0.2",
		"non-numeric":       `"high"`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := parseResult(strings.Replace(base, "%s", raw, 1))
			require.NoError(t, err)
			assert.Equal(t, 0.7, result.Confidence)
		})
	}

	t.Run("missing", func(t *testing.T) {
		result, err := parseResult(`{"title": "T", "category": "electronics", "subcategory": "Phones & Tablets"}`)
		require.NoError(t, err)
		assert.Equal(t, 0.7, result.Confidence)
	})
}

func TestBuildPromptListsCatalog(t *testing.T) {
	prompt := buildPrompt(catalog.Default())
	assert.Contains(t, prompt, "electronics")
	assert.Contains(t, prompt, "Phones & Tablets")
	assert.Contains(t, prompt, "Used - Like New")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}
