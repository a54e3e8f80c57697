// internal/domain/draft/entity.go
package draft

import (
	"time"

	"github.com/tradeyardgit/TradeYard/internal/domain/suggestion"
)

// Draft is the in-progress representation of a not-yet-submitted ad. All
// editable fields are raw input-friendly strings; nothing here is validated
// until submit. A draft is owned exclusively by the editing user.
type Draft struct {
	ID      string `json:"id"`
	OwnerID int64  `json:"owner_id"`

	// Form fields, raw as typed.
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	CategoryID  string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	LocationID  string   `json:"location"`
	Condition   string   `json:"condition"`
	Negotiable  bool     `json:"negotiable"`
	Featured    bool     `json:"featured"`
	Images      []string `json:"images"`

	// Transient UI state.
	SubcategoryOptions []string `json:"subcategory_options"`

	// Suggestion lifecycle.
	SuggestionState suggestion.State   `json:"suggestion_state"`
	Suggestion      *suggestion.Result `json:"suggestion,omitempty"`

	// EditingAdID is set when the draft was pre-populated from an existing
	// ad; submit then updates that ad instead of inserting a new one.
	EditingAdID string `json:"editing_ad_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyPatch merges a reconciled suggestion patch into the draft and
// refreshes the subcategory options the form offers from here on. The
// just-applied subcategory value itself is deliberately not checked against
// those options.
func (d *Draft) ApplyPatch(p *suggestion.Patch) {
	if p == nil {
		return
	}
	d.Title = p.Title
	d.Description = p.Description
	d.CategoryID = p.CategoryID
	d.Subcategory = p.Subcategory
	d.Condition = p.Condition
	d.SubcategoryOptions = p.Subcats
}

// ClearSuggestion returns the suggestion lifecycle to idle. Used by both
// apply and dismiss; only apply touches the form fields.
func (d *Draft) ClearSuggestion() {
	d.Suggestion = nil
	d.SuggestionState = suggestion.StateIdle
}
