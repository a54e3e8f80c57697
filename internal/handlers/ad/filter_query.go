// internal/handlers/ad/filter_query.go
package ad

import (
	"strconv"

	"github.com/gin-gonic/gin"

	addomain "github.com/tradeyardgit/TradeYard/internal/domain/ad"
)

// parseFilter reads filter query params. Malformed numeric bounds are
// treated as absent rather than rejected, matching the forgiving form
// behavior clients expect.
func parseFilter(c *gin.Context) addomain.Filter {
	f := addomain.Filter{
		CategoryID:  c.Query("category"),
		Subcategory: c.Query("subcategory"),
		LocationID:  c.Query("location"),
		SearchText:  c.Query("q"),
	}

	if v := c.Query("price_min"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMin = &p
		}
	}
	if v := c.Query("price_max"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMax = &p
		}
	}

	switch addomain.SortKey(c.Query("sort")) {
	case addomain.SortPriceLowHigh:
		f.SortKey = addomain.SortPriceLowHigh
	case addomain.SortPriceHighLow:
		f.SortKey = addomain.SortPriceHighLow
	default:
		f.SortKey = addomain.SortNewest
	}

	return f
}
