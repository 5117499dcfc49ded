package models

import "time"

// ReviewDB represents a sensory review record in the database
type ReviewDB struct {
	ID         int64     `json:"id" db:"id"`                   // Primary key
	LocationID int64     `json:"location_id" db:"location_id"` // Reviewed location
	NoiseLevel int       `json:"noise_level" db:"noise_level"` // Noise rating
	LightLevel int       `json:"light_level" db:"light_level"` // Light rating
	CrowdLevel int       `json:"crowd_level" db:"crowd_level"` // Crowd rating
	UserID     int64     `json:"user_id" db:"user_id"`         // Author, taken from the verified token
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}
