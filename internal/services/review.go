package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, locationID int64, noiseLevel, lightLevel, crowdLevel int, userID int64) (*models.ReviewDB, error)
}

// RatingsInvalidator drops cached ratings for a location.
type RatingsInvalidator interface {
	InvalidateAverageRatings(ctx context.Context, locationID int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// ReviewService handles review creation, cache invalidation, and best-effort
// event publishing.
type ReviewService struct {
	writeRepo   ReviewWriter
	cache       RatingsInvalidator
	kafkaWriter KafkaWriter
}

// NewReviewService creates a new ReviewService. Cache and Kafka writer may be nil.
func NewReviewService(writeRepo ReviewWriter, cache RatingsInvalidator, kafkaWriter KafkaWriter) *ReviewService {
	return &ReviewService{
		writeRepo:   writeRepo,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a review attributed to the authenticated user. The user ID
// always comes from the verified token identity, never from the request body.
func (svc *ReviewService) Create(ctx context.Context, userID, locationID int64, noiseLevel, lightLevel, crowdLevel int) (*models.ReviewDB, error) {
	review, err := svc.writeRepo.Save(ctx, locationID, noiseLevel, lightLevel, crowdLevel, userID)
	if err != nil {
		logger.Log.Errorw("failed to save review", "location_id", locationID, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.InvalidateAverageRatings(ctx, locationID); err != nil {
			logger.Log.Warnw("failed to invalidate ratings cache", "location_id", locationID, "err", err)
		}
	}

	svc.publishReviewCreated(ctx, review)

	return review, nil
}

// publishReviewCreated publishes a review.created event. Failures are logged
// and never surfaced to the caller.
func (svc *ReviewService) publishReviewCreated(ctx context.Context, review *models.ReviewDB) {
	if svc.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(review)
	if err != nil {
		logger.Log.Errorw("failed to marshal review event", "review_id", review.ID, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(review.LocationID, 10)),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish review event", "review_id", review.ID, "err", err)
	} else {
		logger.Log.Infow("review event published", "review_id", review.ID, "location_id", review.LocationID)
	}
}
