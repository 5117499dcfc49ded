package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

// RatingsCacheRepository provides cached per-location average ratings using Redis
type RatingsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached ratings
}

// NewRatingsCacheRepository creates a new repository instance with optional TTL
func NewRatingsCacheRepository(client *redis.Client, expiration time.Duration) *RatingsCacheRepository {
	return &RatingsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func ratingsKey(locationID int64) string {
	return fmt.Sprintf("location_ratings:%d", locationID)
}

// GetAverageRatings fetches cached average ratings for a location
func (r *RatingsCacheRepository) GetAverageRatings(ctx context.Context, locationID int64) (*models.AverageRatingsDB, error) {
	key := ratingsKey(locationID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("ratings not found in cache for location %d", locationID)
		}
		return nil, err
	}

	var ratings models.AverageRatingsDB
	if err := json.Unmarshal([]byte(val), &ratings); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"error", nil,
	)

	return &ratings, nil
}

// SetAverageRatings caches average ratings for a location with expiration
func (r *RatingsCacheRepository) SetAverageRatings(ctx context.Context, locationID int64, ratings *models.AverageRatingsDB) error {
	key := ratingsKey(locationID)

	data, err := json.Marshal(ratings)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// InvalidateAverageRatings drops the cached ratings for a location.
// Called after a new review is accepted.
func (r *RatingsCacheRepository) InvalidateAverageRatings(ctx context.Context, locationID int64) error {
	key := ratingsKey(locationID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
