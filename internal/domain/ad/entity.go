// internal/domain/ad/entity.go
package ad

import (
	"database/sql"
	"time"
)

type AdStatus string

const (
	AdStatusActive  AdStatus = "active"
	AdStatusPending AdStatus = "pending"
	AdStatusSold    AdStatus = "sold"
	AdStatusExpired AdStatus = "expired"
)

const (
	MaxTitleLen       = 70
	MinDescriptionLen = 20
	MaxDescriptionLen = 4000
	MaxImages         = 5
)

// Ad is a classified listing. Prices are stored currency-agnostic and
// rendered as Nigerian Naira by clients.
type Ad struct {
	ID          string         `json:"id" db:"id"`
	SellerID    int64          `json:"seller_id" db:"seller_id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Price       float64        `json:"price" db:"price"`
	CategoryID  string         `json:"category" db:"category_id"`
	Subcategory sql.NullString `json:"subcategory,omitempty" db:"subcategory"`
	LocationID  string         `json:"location" db:"location_id"`
	Images      []string       `json:"images" db:"images"`
	Condition   sql.NullString `json:"condition,omitempty" db:"condition"`
	Negotiable  bool           `json:"negotiable" db:"negotiable"`
	Featured    bool           `json:"featured" db:"featured"`
	Status      AdStatus       `json:"status" db:"status"`
	PostedAt    time.Time      `json:"posted_at" db:"posted_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

type AdStats struct {
	TotalAds      int64            `json:"total_ads"`
	ActiveAds     int64            `json:"active_ads"`
	FeaturedAds   int64            `json:"featured_ads"`
	AdsByCategory map[string]int64 `json:"ads_by_category"`
}
