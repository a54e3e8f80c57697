package ad

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkAd(id, category, subcategory, location, title, desc string, price float64, postedAt time.Time) Ad {
	return Ad{
		ID:          id,
		Title:       title,
		Description: desc,
		Price:       price,
		CategoryID:  category,
		Subcategory: sql.NullString{String: subcategory, Valid: subcategory != ""},
		LocationID:  location,
		Status:      AdStatusActive,
		PostedAt:    postedAt,
	}
}

func sampleAds() []Ad {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return []Ad{
		mkAd("a1", "electronics", "Phones & Tablets", "ikeja", "iPhone 13 Pro Max 256GB", "Clean phone, no scratches", 650000, base.Add(1*time.Hour)),
		mkAd("a2", "electronics", "Computers & Laptops", "lekki", "MacBook Air M2", "Barely used laptop", 980000, base.Add(3*time.Hour)),
		mkAd("a3", "vehicles", "Cars", "abuja", "Toyota Corolla 2015", "First body, buy and drive", 4500000, base.Add(2*time.Hour)),
		mkAd("a4", "electronics", "Phones & Tablets", "ikeja", "Samsung Galaxy S22", "Comes with charger and case", 420000, base),
		mkAd("a5", "fashion", "Watches", "ikeja", "Rolex Submariner (replica)", "High grade AAA replica watch", 65000, base.Add(4*time.Hour)),
	}
}

func TestApplyFilterIdentityReturnsAllNewestFirst(t *testing.T) {
	ads := sampleAds()
	out := ApplyFilter(ads, Filter{})

	require.Len(t, out, len(ads))
	// Newest first by posted time.
	ids := []string{out[0].ID, out[1].ID, out[2].ID, out[3].ID, out[4].ID}
	assert.Equal(t, []string{"a5", "a2", "a3", "a1", "a4"}, ids)
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	ads := sampleAds()
	orig := make([]Ad, len(ads))
	copy(orig, ads)

	_ = ApplyFilter(ads, Filter{SortKey: SortPriceLowHigh})

	assert.Equal(t, orig, ads)
}

func TestApplyFilterByCategory(t *testing.T) {
	out := ApplyFilter(sampleAds(), Filter{CategoryID: "electronics"})

	require.Len(t, out, 3)
	for _, a := range out {
		assert.Equal(t, "electronics", a.CategoryID)
	}
}

func TestApplyFilterSubcategoryIsCaseSensitive(t *testing.T) {
	out := ApplyFilter(sampleAds(), Filter{Subcategory: "Phones & Tablets"})
	assert.Len(t, out, 2)

	// Unlike category-name reconciliation, subcategory labels never
	// normalize case.
	out = ApplyFilter(sampleAds(), Filter{Subcategory: "phones & tablets"})
	assert.Empty(t, out)
}

func TestApplyFilterByLocation(t *testing.T) {
	out := ApplyFilter(sampleAds(), Filter{LocationID: "ikeja"})
	require.Len(t, out, 3)
	for _, a := range out {
		assert.Equal(t, "ikeja", a.LocationID)
	}
}

func TestApplyFilterPriceBounds(t *testing.T) {
	min := 100000.0
	max := 1000000.0
	out := ApplyFilter(sampleAds(), Filter{PriceMin: &min, PriceMax: &max})

	require.NotEmpty(t, out)
	for _, a := range out {
		assert.GreaterOrEqual(t, a.Price, min)
		assert.LessOrEqual(t, a.Price, max)
	}
	assert.Len(t, out, 3) // a1, a2, a4
}

func TestApplyFilterPriceBoundsInclusive(t *testing.T) {
	exact := 650000.0
	out := ApplyFilter(sampleAds(), Filter{PriceMin: &exact, PriceMax: &exact})

	require.Len(t, out, 1)
	assert.Equal(t, "a1", out[0].ID)
}

func TestApplyFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	out := ApplyFilter(sampleAds(), Filter{SearchText: "iphone"})
	require.Len(t, out, 1)
	assert.Equal(t, "a1", out[0].ID)

	// Matches on description too.
	out = ApplyFilter(sampleAds(), Filter{SearchText: "BUY AND DRIVE"})
	require.Len(t, out, 1)
	assert.Equal(t, "a3", out[0].ID)

	// Whitespace-only search applies no filter.
	out = ApplyFilter(sampleAds(), Filter{SearchText: "   "})
	assert.Len(t, out, 5)
}

func TestApplyFilterSortByPriceReverses(t *testing.T) {
	ads := sampleAds() // all prices distinct
	asc := ApplyFilter(ads, Filter{SortKey: SortPriceLowHigh})
	desc := ApplyFilter(ads, Filter{SortKey: SortPriceHighLow})

	require.Len(t, asc, len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestApplyFilterSortIsStableOnTies(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ads := []Ad{
		mkAd("t1", "electronics", "", "ikeja", "Item one", "same price listing one", 5000, base),
		mkAd("t2", "electronics", "", "ikeja", "Item two", "same price listing two", 5000, base.Add(time.Hour)),
		mkAd("t3", "electronics", "", "ikeja", "Item three", "same price listing three", 5000, base.Add(2*time.Hour)),
	}

	asc := ApplyFilter(ads, Filter{SortKey: SortPriceLowHigh})
	assert.Equal(t, []string{"t1", "t2", "t3"}, []string{asc[0].ID, asc[1].ID, asc[2].ID})

	desc := ApplyFilter(ads, Filter{SortKey: SortPriceHighLow})
	assert.Equal(t, []string{"t1", "t2", "t3"}, []string{desc[0].ID, desc[1].ID, desc[2].ID})
}

func TestApplyFilterEmptyInput(t *testing.T) {
	out := ApplyFilter(nil, Filter{CategoryID: "electronics"})
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestApplyFilterNoMatch(t *testing.T) {
	out := ApplyFilter(sampleAds(), Filter{CategoryID: "pets"})
	assert.Empty(t, out)
}

func TestApplyFilterCombinedPredicates(t *testing.T) {
	max := 700000.0
	out := ApplyFilter(sampleAds(), Filter{
		CategoryID:  "electronics",
		Subcategory: "Phones & Tablets",
		LocationID:  "ikeja",
		PriceMax:    &max,
		SearchText:  "samsung",
	})

	require.Len(t, out, 1)
	assert.Equal(t, "a4", out[0].ID)
}
