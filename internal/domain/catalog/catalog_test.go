package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	cat := Default()

	assert.Len(t, cat.Categories(), 12)
	assert.NotEmpty(t, cat.Locations())

	c, ok := cat.CategoryByID("electronics")
	require.True(t, ok)
	assert.Equal(t, "Electronics", c.Name)
	assert.Contains(t, c.Subcategories, "Phones & Tablets")

	l, ok := cat.LocationByID("ikeja")
	require.True(t, ok)
	assert.Equal(t, "Lagos", l.State)
}

func TestCategoryByIDIsExact(t *testing.T) {
	cat := Default()

	_, ok := cat.CategoryByID("Electronics")
	assert.False(t, ok, "category ids are lowercase slugs, lookup is exact")
}

func TestHasSubcategoryIsCaseSensitive(t *testing.T) {
	cat := Default()

	assert.True(t, cat.HasSubcategory("electronics", "Phones & Tablets"))
	assert.False(t, cat.HasSubcategory("electronics", "phones & tablets"))
	assert.False(t, cat.HasSubcategory("electronics", "Cars"))
	assert.False(t, cat.HasSubcategory("nope", "Phones & Tablets"))
}

func TestConditions(t *testing.T) {
	assert.Len(t, Conditions(), 4)
	assert.True(t, ValidCondition("Used - Like New"))
	assert.False(t, ValidCondition("used - like new"))
	assert.False(t, ValidCondition("Broken"))
}

func TestSubcategoriesOfReturnsCopy(t *testing.T) {
	cat := Default()

	subs := cat.SubcategoriesOf("gaming")
	require.NotEmpty(t, subs)
	subs[0] = "mutated"

	again := cat.SubcategoriesOf("gaming")
	assert.NotEqual(t, "mutated", again[0])
}
