package business

import (
	"time"
)

type Business struct {
	ID          int       `json:"id"`
	PlaceID     string    `json:"place_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	District    string    `json:"district"`
	Category    string    `json:"category"`
	Rating      *float64  `json:"rating"`
	ReviewCount *int      `json:"review_count"`
	Phone       *string   `json:"phone"`
	Website     *string   `json:"website"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	IsOpen      *bool     `json:"is_open"`
	PhotoURL    *string   `json:"photo_url"`
	PriceLevel  *int      `json:"price_level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateBusinessRequest carries the fields a caller supplies when registering
// a business. PlaceID is the unique key handed out by the places provider.
type CreateBusinessRequest struct {
	PlaceID     string   `json:"place_id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	District    string   `json:"district"`
	Category    string   `json:"category"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int     `json:"review_count"`
	Phone       *string  `json:"phone"`
	Website     *string  `json:"website"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	IsOpen      *bool    `json:"is_open"`
	PhotoURL    *string  `json:"photo_url"`
	PriceLevel  *int     `json:"price_level"`
}

// UpdateBusinessRequest is a partial update: every field is independently
// nullable and only non-nil fields are merged onto the stored record.
type UpdateBusinessRequest struct {
	PlaceID     *string  `json:"place_id"`
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	District    *string  `json:"district"`
	Category    *string  `json:"category"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int     `json:"review_count"`
	Phone       *string  `json:"phone"`
	Website     *string  `json:"website"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	IsOpen      *bool    `json:"is_open"`
	PhotoURL    *string  `json:"photo_url"`
	PriceLevel  *int     `json:"price_level"`
}

// SearchFilters describes one search request. All filters are optional and
// conjunctive. MinRating uses a pointer so an explicit 0 stays distinguishable
// from "no filter", even though both currently mean no rating floor.
// Latitude/Longitude must be supplied together to enable distance filtering.
type SearchFilters struct {
	Query       string   `json:"query,omitempty"`
	District    string   `json:"district,omitempty"`
	Category    string   `json:"category,omitempty"`
	MinRating   *float64 `json:"min_rating,omitempty"`
	MaxDistance *float64 `json:"max_distance,omitempty"`
	OnlyOpen    bool     `json:"only_open,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

type SearchResponse struct {
	Businesses []Business    `json:"businesses"`
	Total      int           `json:"total"`
	Filters    SearchFilters `json:"filters"`
}
