// internal/service/analysis/parse.go
package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tradeyardgit/TradeYard/internal/domain/catalog"
	"github.com/tradeyardgit/TradeYard/internal/domain/suggestion"
)

const defaultConfidence = 0.7

// buildPrompt produces the analysis instruction for the model, listing every
// category and its subcategories so replies stay inside the known taxonomy.
func buildPrompt(cat *catalog.Catalog) string {
	var b strings.Builder

	ids := make([]string, 0, len(cat.Categories()))
	for _, c := range cat.Categories() {
		ids = append(ids, c.ID)
	}

	conditions := make([]string, 0, len(catalog.Conditions()))
	for _, c := range catalog.Conditions() {
		conditions = append(conditions, string(c))
	}

	b.WriteString("Analyze this product image and extract the following information in JSON format:\n\n")
	b.WriteString("{\n")
	b.WriteString("  \"title\": \"A descriptive product title (max 70 characters)\",\n")
	fmt.Fprintf(&b, "  \"category\": \"One of: %s\",\n", strings.Join(ids, ", "))
	b.WriteString("  \"subcategory\": \"A specific subcategory based on the category\",\n")
	fmt.Fprintf(&b, "  \"condition\": \"One of: %s\",\n", strings.Join(conditions, ", "))
	b.WriteString("  \"tags\": [\"relevant\", \"product\", \"tags\"],\n")
	b.WriteString("  \"description\": \"A detailed product description (50-200 words)\",\n")
	b.WriteString("  \"confidence\": 0.85\n")
	b.WriteString("}\n\n")

	b.WriteString("Categories and their subcategories:\n")
	for _, c := range cat.Categories() {
		fmt.Fprintf(&b, "- %s: %s\n", c.ID, strings.Join(c.Subcategories, ", "))
	}

	b.WriteString(`
Guidelines:
- Be specific and accurate in your analysis
- Consider brand names, model numbers, and visible features
- Assess condition based on visible wear, packaging, etc.
- Generate relevant tags for searchability
- Set confidence based on image clarity and recognizability
- Return ONLY valid JSON, no additional text

Analyze this image:
`)

	return b.String()
}

// rawResult mirrors suggestion.Result but keeps confidence loose, since the
// model sometimes omits it or returns it as a string.
type rawResult struct {
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Condition   string          `json:"condition"`
	Tags        []string        `json:"tags"`
	Description string          `json:"description"`
	Confidence  json.RawMessage `json:"confidence"`
}

// parseResult extracts the JSON object from the model's reply text and
// validates its structure. Models often wrap JSON in prose or code fences,
// so the object is cut from the first '{' to the last '}'.
func parseResult(text string) (*suggestion.Result, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON found in analysis reply")
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis reply as JSON: %w", err)
	}

	if raw.Title == "" || raw.Category == "" || raw.Subcategory == "" {
		return nil, fmt.Errorf("analysis reply is missing required fields")
	}

	confidence := defaultConfidence
	if len(raw.Confidence) > 0 {
		var v float64
		if err := json.Unmarshal(raw.Confidence, &v); err == nil && v >= 0 && v <= 1 {
			confidence = v
		}
	}

	return &suggestion.Result{
		Title:       raw.Title,
		Category:    raw.Category,
		Subcategory: raw.Subcategory,
		Condition:   raw.Condition,
		Tags:        raw.Tags,
		Description: raw.Description,
		Confidence:  confidence,
	}, nil
}
