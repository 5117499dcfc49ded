package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Save inserts a review and returns the stored row. A non-existent
// location_id violates the foreign key and surfaces as a store error.
func (r *ReviewWriteRepository) Save(ctx context.Context, locationID int64, noiseLevel, lightLevel, crowdLevel int, userID int64) (*models.ReviewDB, error) {
	const query = `
		INSERT INTO reviews (location_id, noise_level, light_level, crowd_level, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, location_id, noise_level, light_level, crowd_level, user_id, created_at
	`
	args := []any{locationID, noiseLevel, lightLevel, crowdLevel, userID}

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", review.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &review, nil
}
