package services

import (
	"context"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

// LocationReader defines read operations for locations and their ratings.
type LocationReader interface {
	List(ctx context.Context) ([]models.LocationDB, error)
	GetByID(ctx context.Context, id int64) (*models.LocationDB, error)
	GetAverageRatings(ctx context.Context, locationID int64) (*models.AverageRatingsDB, error)
}

// RatingsCache caches average ratings per location.
type RatingsCache interface {
	GetAverageRatings(ctx context.Context, locationID int64) (*models.AverageRatingsDB, error)
	SetAverageRatings(ctx context.Context, locationID int64, ratings *models.AverageRatingsDB) error
}

// LocationService serves location listings and per-location details with
// mean sensory ratings, using a cache-aside Redis layer for the ratings.
type LocationService struct {
	repo  LocationReader
	cache RatingsCache
}

// NewLocationService creates a new LocationService. The cache may be nil.
func NewLocationService(repo LocationReader, cache RatingsCache) *LocationService {
	return &LocationService{
		repo:  repo,
		cache: cache,
	}
}

// List returns all locations in ascending name order.
func (svc *LocationService) List(ctx context.Context) ([]models.LocationDB, error) {
	return svc.repo.List(ctx)
}

// Get returns location details together with average ratings. Details are
// nil when the location does not exist; ratings fields are nil when the
// location has no reviews.
func (svc *LocationService) Get(ctx context.Context, id int64) (*models.LocationDB, *models.AverageRatingsDB, error) {
	location, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if svc.cache != nil {
		if cached, err := svc.cache.GetAverageRatings(ctx, id); err == nil {
			return location, cached, nil
		}
	}

	ratings, err := svc.repo.GetAverageRatings(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetAverageRatings(ctx, id, ratings); err != nil {
			logger.Log.Warnw("failed to cache ratings", "location_id", id, "err", err)
		}
	}

	return location, ratings, nil
}
