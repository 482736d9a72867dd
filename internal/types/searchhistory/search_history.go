package searchhistory

import "time"

// SearchHistory is one recorded search. Entries are append-only; reads return
// at most the 50 most recent for a user, newest first.
type SearchHistory struct {
	ID           int       `json:"id"`
	Query        string    `json:"query"`
	District     *string   `json:"district"`
	Category     *string   `json:"category"`
	ResultsCount int       `json:"results_count"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type AddSearchHistoryRequest struct {
	Query        string  `json:"query"`
	District     *string `json:"district"`
	Category     *string `json:"category"`
	ResultsCount int     `json:"results_count"`
	UserID       string  `json:"user_id"`
}
