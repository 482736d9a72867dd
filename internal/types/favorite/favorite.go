package favorite

import "time"

// Favorite links a user to a saved business. At most one exists per
// (business, user) pair; adding an existing pair returns the stored record.
type Favorite struct {
	ID         int       `json:"id"`
	BusinessID int       `json:"business_id"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type AddFavoriteRequest struct {
	BusinessID int    `json:"business_id"`
	UserID     string `json:"user_id"`
}
