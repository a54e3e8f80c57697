package suggestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeyardgit/TradeYard/internal/domain/catalog"
)

func TestReconcileMatchesCategoryCaseInsensitively(t *testing.T) {
	r := NewReconciler(catalog.Default())

	for _, raw := range []string{"electronics", "Electronics", "ELECTRONICS"} {
		t.Run(raw, func(t *testing.T) {
			patch := r.Reconcile(&Result{Title: "TV", Category: raw})
			require.NotNil(t, patch)
			assert.Equal(t, "electronics", patch.CategoryID)
		})
	}
}

func TestReconcileMatchesByExactID(t *testing.T) {
	r := NewReconciler(catalog.Default())

	patch := r.Reconcile(&Result{Title: "Bed frame", Category: "furniture"})
	require.NotNil(t, patch)
	assert.Equal(t, "furniture", patch.CategoryID)
}

func TestReconcileUnknownCategoryYieldsNoPatch(t *testing.T) {
	r := NewReconciler(catalog.Default())

	assert.Nil(t, r.Reconcile(&Result{Title: "Thing", Category: "unknown-thing"}))
	assert.Nil(t, r.Reconcile(&Result{Title: "Thing"}))
	assert.Nil(t, r.Reconcile(nil))
}

func TestReconcileCarriesRawSubcategoryAndCondition(t *testing.T) {
	r := NewReconciler(catalog.Default())

	// Neither value is checked against the catalog here; the draft's
	// submit-time validation is the gatekeeper.
	patch := r.Reconcile(&Result{
		Title:       "Mystery box",
		Category:    "Electronics",
		Subcategory: "Not A Real Subcategory",
		Condition:   "Slightly Singed",
	})
	require.NotNil(t, patch)
	assert.Equal(t, "Not A Real Subcategory", patch.Subcategory)
	assert.Equal(t, "Slightly Singed", patch.Condition)
}

func TestReconcileRefreshesSubcategoryOptions(t *testing.T) {
	cat := catalog.Default()
	r := NewReconciler(cat)

	patch := r.Reconcile(&Result{
		Title:       "iPhone 13 Pro",
		Category:    "electronics",
		Subcategory: "Phones & Tablets",
		Condition:   "Used - Like New",
		Description: "Lightly used, no scratches.",
		Confidence:  0.92,
	})
	require.NotNil(t, patch)
	assert.Equal(t, "iPhone 13 Pro", patch.Title)
	assert.Equal(t, "Lightly used, no scratches.", patch.Description)
	assert.Equal(t, cat.SubcategoriesOf("electronics"), patch.Subcats)
}
