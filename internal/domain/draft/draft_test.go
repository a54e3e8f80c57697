package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeyardgit/TradeYard/internal/domain/catalog"
	"github.com/tradeyardgit/TradeYard/internal/domain/suggestion"
)

func TestApplyPatchMergesSuggestionIntoEmptyDraft(t *testing.T) {
	cat := catalog.Default()
	r := suggestion.NewReconciler(cat)

	d := &Draft{ID: "d1", OwnerID: 1, SuggestionState: suggestion.StateReady}
	d.Suggestion = &suggestion.Result{
		Title:       "iPhone 13 Pro",
		Category:    "electronics",
		Subcategory: "Phones & Tablets",
		Condition:   "Used - Like New",
		Tags:        []string{"phone", "apple"},
		Description: "Excellent condition, barely used, comes with original box.",
		Confidence:  0.92,
	}

	d.ApplyPatch(r.Reconcile(d.Suggestion))
	d.ClearSuggestion()

	assert.Equal(t, "iPhone 13 Pro", d.Title)
	assert.Equal(t, "electronics", d.CategoryID)
	assert.Equal(t, "Phones & Tablets", d.Subcategory)
	assert.Equal(t, "Used - Like New", d.Condition)
	assert.Equal(t, cat.SubcategoriesOf("electronics"), d.SubcategoryOptions)
	assert.Equal(t, suggestion.StateIdle, d.SuggestionState)
	assert.Nil(t, d.Suggestion)
}

func TestApplyPatchNilLeavesDraftUnmodified(t *testing.T) {
	d := &Draft{Title: "keep me", CategoryID: "fashion"}
	d.ApplyPatch(nil)
	assert.Equal(t, "keep me", d.Title)
	assert.Equal(t, "fashion", d.CategoryID)
}

func TestValidateEmptyDraft(t *testing.T) {
	d := &Draft{}
	errs := d.Validate(catalog.Default())
	require.NotNil(t, errs)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "location")
	assert.Equal(t, "Please upload at least one image", errs["images"])
}

func TestValidateCatchesUnvalidatedSuggestionValues(t *testing.T) {
	// A suggestion can write any subcategory or condition string into the
	// draft; submit-time validation is where they get caught.
	d := &Draft{
		Title:       "Mystery gadget",
		Description: "A perfectly reasonable twenty character description.",
		Price:       "1500",
		CategoryID:  "electronics",
		Subcategory: "Not A Real Subcategory",
		LocationID:  "ikeja",
		Condition:   "Slightly Singed",
		Images:      []string{"https://img.example/1.jpg"},
	}

	errs := d.Validate(catalog.Default())
	require.NotNil(t, errs)
	assert.Equal(t, "Subcategory does not belong to the selected category", errs["subcategory"])
	assert.Equal(t, "Please select a valid condition", errs["condition"])
}

func TestValidatePriceAndImages(t *testing.T) {
	d := &Draft{
		Title:       "Bike",
		Description: "A perfectly reasonable twenty character description.",
		Price:       "not-a-number",
		CategoryID:  "vehicles",
		LocationID:  "ikeja",
		Images:      []string{"1", "2", "3", "4", "5", "6"},
	}

	errs := d.Validate(catalog.Default())
	require.NotNil(t, errs)
	assert.Equal(t, "Please enter a valid price", errs["price"])
	assert.Equal(t, "You can upload a maximum of 5 images", errs["images"])
}

func TestValidatePassesAndConverts(t *testing.T) {
	d := &Draft{
		Title:       "iPhone 13 Pro",
		Description: "Excellent condition, barely used, comes with original box.",
		Price:       "450000",
		CategoryID:  "electronics",
		Subcategory: "Phones & Tablets",
		LocationID:  "ikeja",
		Condition:   "Used - Like New",
		Negotiable:  true,
		Images:      []string{"https://img.example/1.jpg"},
	}

	require.Nil(t, d.Validate(catalog.Default()))

	req := d.ToCreateRequest()
	assert.Equal(t, 450000.0, req.Price)
	assert.Equal(t, "electronics", req.CategoryID)
	assert.True(t, req.Negotiable)
}
