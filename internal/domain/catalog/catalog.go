// internal/domain/catalog/catalog.go
package catalog

// Icon identifies the presentation glyph for a category. Keys are fixed at
// definition time; callers map them to whatever glyph set they render with.
type Icon string

const (
	IconSmartphone Icon = "smartphone"
	IconGamepad    Icon = "gamepad2"
	IconCar        Icon = "car"
	IconHome       Icon = "home"
	IconShirt      Icon = "shirt"
	IconBriefcase  Icon = "briefcase"
	IconWrench     Icon = "wrench"
	IconSofa       Icon = "sofa"
	IconBaby       Icon = "baby"
	IconDumbbell   Icon = "dumbbell"
	IconBook       Icon = "book"
	IconHeart      Icon = "heart"
)

type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Icon          Icon     `json:"icon"`
	Subcategories []string `json:"subcategories"`
}

type Location struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// Condition is the fixed item-condition enumeration.
type Condition string

const (
	ConditionNew         Condition = "New"
	ConditionUsedLikeNew Condition = "Used - Like New"
	ConditionUsedGood    Condition = "Used - Good"
	ConditionUsedFair    Condition = "Used - Fair"
)

// Conditions lists every valid condition in display order.
func Conditions() []Condition {
	return []Condition{ConditionNew, ConditionUsedLikeNew, ConditionUsedGood, ConditionUsedFair}
}

// ValidCondition reports whether s is one of the fixed condition labels.
func ValidCondition(s string) bool {
	for _, c := range Conditions() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Catalog holds the immutable reference data the service is configured with.
// It is constructed once at startup and injected wherever categories or
// locations are consulted; callers must treat the contained slices as
// read-only.
type Catalog struct {
	categories []Category
	locations  []Location

	categoryByID map[string]*Category
	locationByID map[string]*Location
}

// New builds a Catalog from explicit category and location sets.
func New(categories []Category, locations []Location) *Catalog {
	c := &Catalog{
		categories:   categories,
		locations:    locations,
		categoryByID: make(map[string]*Category, len(categories)),
		locationByID: make(map[string]*Location, len(locations)),
	}
	for i := range c.categories {
		c.categoryByID[c.categories[i].ID] = &c.categories[i]
	}
	for i := range c.locations {
		c.locationByID[c.locations[i].ID] = &c.locations[i]
	}
	return c
}

// Default returns a Catalog with the standard TradeYard reference data.
func Default() *Catalog {
	return New(defaultCategories, defaultLocations)
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Locations returns all locations grouped by state.
func (c *Catalog) Locations() []Location {
	return c.locations
}

// CategoryByID looks up a category by its slug.
func (c *Catalog) CategoryByID(id string) (*Category, bool) {
	cat, ok := c.categoryByID[id]
	return cat, ok
}

// LocationByID looks up a location by its slug.
func (c *Catalog) LocationByID(id string) (*Location, bool) {
	loc, ok := c.locationByID[id]
	return loc, ok
}

// SubcategoriesOf returns the subcategory labels of a category, or nil when
// the category is unknown.
func (c *Catalog) SubcategoriesOf(categoryID string) []string {
	cat, ok := c.categoryByID[categoryID]
	if !ok {
		return nil
	}
	return append([]string(nil), cat.Subcategories...)
}

// HasSubcategory reports whether label is one of the category's subcategory
// labels. The comparison is exact, including case.
func (c *Catalog) HasSubcategory(categoryID, label string) bool {
	for _, s := range c.SubcategoriesOf(categoryID) {
		if s == label {
			return true
		}
	}
	return false
}
