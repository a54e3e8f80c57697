// internal/domain/ad/dto.go
package ad

type CreateAdRequest struct {
	Title       string   `json:"title" binding:"required,max=70"`
	Description string   `json:"description" binding:"required,min=20,max=4000"`
	Price       float64  `json:"price" binding:"min=0"`
	CategoryID  string   `json:"category" binding:"required"`
	Subcategory string   `json:"subcategory"`
	LocationID  string   `json:"location" binding:"required"`
	Images      []string `json:"images" binding:"max=5"`
	Condition   string   `json:"condition"`
	Negotiable  bool     `json:"negotiable"`
	Featured    bool     `json:"featured"`
}

// UpdateAdRequest replaces exactly the named fields. Nil fields are left
// untouched, so a form variant that never renders a field cannot clear it.
type UpdateAdRequest struct {
	Title       *string   `json:"title" binding:"omitempty,max=70"`
	Description *string   `json:"description" binding:"omitempty,min=20,max=4000"`
	Price       *float64  `json:"price" binding:"omitempty,min=0"`
	CategoryID  *string   `json:"category"`
	Subcategory *string   `json:"subcategory"`
	LocationID  *string   `json:"location"`
	Images      *[]string `json:"images" binding:"omitempty,max=5"`
	Condition   *string   `json:"condition"`
	Negotiable  *bool     `json:"negotiable"`
	Featured    *bool     `json:"featured"`
	Status      *AdStatus `json:"status"`
}

type AdListResponse struct {
	Ads   []Ad `json:"ads"`
	Total int  `json:"total"`
}
