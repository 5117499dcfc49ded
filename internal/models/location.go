package models

// LocationDB represents a location record in the database
type LocationDB struct {
	ID          int64  `json:"id" db:"id"`                   // Primary key
	Name        string `json:"name" db:"name"`               // Display name, unique per seed data
	Type        string `json:"type" db:"type"`               // ex. Cafe, Park, Library
	Address     string `json:"address" db:"address"`         // Street address
	Description string `json:"description" db:"description"` // Free-text description
}

// AverageRatingsDB holds per-location mean sensory ratings.
// Fields are nil when the location has no reviews yet.
type AverageRatingsDB struct {
	Noise *float64 `db:"avg_noise"`
	Light *float64 `db:"avg_light"`
	Crowd *float64 `db:"avg_crowd"`
}
