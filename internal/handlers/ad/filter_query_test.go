package ad

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	addomain "github.com/tradeyardgit/TradeYard/internal/domain/ad"
)

func ginContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/ads?"+rawQuery, nil)
	return c
}

func TestParseFilterFullQuery(t *testing.T) {
	c := ginContext(t, "category=electronics&subcategory=Phones+%26+Tablets&location=ikeja&price_min=1000&price_max=5000&q=iphone&sort=price_low_high")

	f := parseFilter(c)
	assert.Equal(t, "electronics", f.CategoryID)
	assert.Equal(t, "Phones & Tablets", f.Subcategory)
	assert.Equal(t, "ikeja", f.LocationID)
	require.NotNil(t, f.PriceMin)
	assert.Equal(t, 1000.0, *f.PriceMin)
	require.NotNil(t, f.PriceMax)
	assert.Equal(t, 5000.0, *f.PriceMax)
	assert.Equal(t, "iphone", f.SearchText)
	assert.Equal(t, addomain.SortPriceLowHigh, f.SortKey)
}

func TestParseFilterMalformedPricesAreAbsent(t *testing.T) {
	c := ginContext(t, "price_min=abc&price_max=1e")

	f := parseFilter(c)
	assert.Nil(t, f.PriceMin)
	assert.Nil(t, f.PriceMax)
}

func TestParseFilterZeroPriceBoundIsKept(t *testing.T) {
	c := ginContext(t, "price_min=0")

	f := parseFilter(c)
	require.NotNil(t, f.PriceMin)
	assert.Equal(t, 0.0, *f.PriceMin)
}

func TestParseFilterUnknownSortFallsBackToNewest(t *testing.T) {
	assert.Equal(t, addomain.SortNewest, parseFilter(ginContext(t, "sort=bogus")).SortKey)
	assert.Equal(t, addomain.SortNewest, parseFilter(ginContext(t, "")).SortKey)
}
