// internal/handlers/catalog/catalog_handler.go
package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/tradeyardgit/TradeYard/internal/domain/catalog"
	"github.com/tradeyardgit/TradeYard/internal/pkg/response"
)

// CatalogHandler serves the static reference data clients build their
// browse and posting forms from.
type CatalogHandler struct {
	catalog *catalogdomain.Catalog
}

func NewCatalogHandler(cat *catalogdomain.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, "categories retrieved", h.catalog.Categories())
}

func (h *CatalogHandler) ListLocations(c *gin.Context) {
	response.Success(c, http.StatusOK, "locations retrieved", h.catalog.Locations())
}

func (h *CatalogHandler) ListConditions(c *gin.Context) {
	response.Success(c, http.StatusOK, "conditions retrieved", catalogdomain.Conditions())
}

// GetSubcategories returns the subcategory labels of one category.
func (h *CatalogHandler) GetSubcategories(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.catalog.CategoryByID(id); !ok {
		response.NotFound(c, "category not found")
		return
	}

	response.Success(c, http.StatusOK, "subcategories retrieved", h.catalog.SubcategoriesOf(id))
}
