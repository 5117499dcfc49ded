package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReviewWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewWriteRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "location_id", "noise_level", "light_level", "crowd_level", "user_id", "created_at"}).
		AddRow(10, 5, 2, 3, 1, 42, now)

	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs(int64(5), 2, 3, 1, int64(42)).
		WillReturnRows(rows)

	review, err := repo.Save(context.Background(), 5, 2, 3, 1, 42)
	assert.NoError(t, err)
	assert.NotNil(t, review)
	assert.Equal(t, int64(10), review.ID)
	assert.Equal(t, int64(5), review.LocationID)
	assert.Equal(t, int64(42), review.UserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewWriteRepository_Save_UnknownLocation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewWriteRepository(db)

	// The datastore enforces referential integrity, not the handler
	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs(int64(999), 2, 3, 1, int64(42)).
		WillReturnError(errors.New(`insert or update on table "reviews" violates foreign key constraint "reviews_location_id_fkey"`))

	review, err := repo.Save(context.Background(), 999, 2, 3, 1, 42)
	assert.Error(t, err)
	assert.Nil(t, review)
}
