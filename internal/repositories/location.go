package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

type LocationReadRepository struct {
	db *sqlx.DB
}

func NewLocationReadRepository(db *sqlx.DB) *LocationReadRepository {
	return &LocationReadRepository{db: db}
}

// List returns all locations in ascending name order.
func (r *LocationReadRepository) List(ctx context.Context) ([]models.LocationDB, error) {
	const query = `
		SELECT id, name, type, address, description
		FROM locations
		ORDER BY name ASC
	`

	locations := make([]models.LocationDB, 0)
	err := r.db.SelectContext(ctx, &locations, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(locations),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return locations, nil
}

// GetByID returns the location with the given ID, or nil when none exists.
func (r *LocationReadRepository) GetByID(ctx context.Context, id int64) (*models.LocationDB, error) {
	const query = `
		SELECT id, name, type, address, description
		FROM locations
		WHERE id = $1
	`

	var location models.LocationDB
	err := r.db.GetContext(ctx, &location, query, id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &location, nil
}

// GetAverageRatings computes mean sensory ratings over all reviews for a
// location. SQL AVG over zero rows yields NULL, which maps to nil fields.
func (r *LocationReadRepository) GetAverageRatings(ctx context.Context, locationID int64) (*models.AverageRatingsDB, error) {
	const query = `
		SELECT AVG(noise_level) AS avg_noise,
		       AVG(light_level) AS avg_light,
		       AVG(crowd_level) AS avg_crowd
		FROM reviews
		WHERE location_id = $1
	`

	var ratings models.AverageRatingsDB
	err := r.db.GetContext(ctx, &ratings, query, locationID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{locationID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &ratings, nil
}
