// internal/domain/draft/validate.go
package draft

import (
	"strconv"
	"strings"

	"github.com/tradeyardgit/TradeYard/internal/domain/ad"
	"github.com/tradeyardgit/TradeYard/internal/domain/catalog"
)

// FieldErrors maps a form field name to a user-facing message. Validation
// errors stay client-local; a draft with any never reaches the listing store.
type FieldErrors map[string]string

// Validate checks a draft for submission. This is where the gaps the AI
// suggestion path leaves open (unvalidated subcategory and condition) are
// finally caught.
func (d *Draft) Validate(cat *catalog.Catalog) FieldErrors {
	errs := FieldErrors{}

	title := strings.TrimSpace(d.Title)
	if title == "" {
		errs["title"] = "Please enter a title"
	} else if len(title) > ad.MaxTitleLen {
		errs["title"] = "Title must be 70 characters or less"
	}

	desc := strings.TrimSpace(d.Description)
	if desc == "" {
		errs["description"] = "Please enter a description"
	} else if len(desc) < ad.MinDescriptionLen || len(desc) > ad.MaxDescriptionLen {
		errs["description"] = "Description must be between 20 and 4000 characters"
	}

	if strings.TrimSpace(d.Price) == "" {
		errs["price"] = "Please enter a price"
	} else if price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64); err != nil || price < 0 {
		errs["price"] = "Please enter a valid price"
	}

	if d.CategoryID == "" {
		errs["category"] = "Please select a category"
	} else if _, ok := cat.CategoryByID(d.CategoryID); !ok {
		errs["category"] = "Unknown category"
	} else if d.Subcategory != "" && !cat.HasSubcategory(d.CategoryID, d.Subcategory) {
		errs["subcategory"] = "Subcategory does not belong to the selected category"
	}

	if d.LocationID == "" {
		errs["location"] = "Please select a location"
	} else if _, ok := cat.LocationByID(d.LocationID); !ok {
		errs["location"] = "Unknown location"
	}

	if d.Condition != "" && !catalog.ValidCondition(d.Condition) {
		errs["condition"] = "Please select a valid condition"
	}

	if len(d.Images) == 0 {
		errs["images"] = "Please upload at least one image"
	} else if len(d.Images) > ad.MaxImages {
		errs["images"] = "You can upload a maximum of 5 images"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ToCreateRequest converts a validated draft into a listing-store insert
// request. Call Validate first; this assumes the price parses.
func (d *Draft) ToCreateRequest() *ad.CreateAdRequest {
	price, _ := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	return &ad.CreateAdRequest{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Price:       price,
		CategoryID:  d.CategoryID,
		Subcategory: d.Subcategory,
		LocationID:  d.LocationID,
		Images:      d.Images,
		Condition:   d.Condition,
		Negotiable:  d.Negotiable,
		Featured:    d.Featured,
	}
}
