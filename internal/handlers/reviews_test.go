package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sensoryscout/sensoryscout-backend/internal/jwt"
	"github.com/sensoryscout/sensoryscout-backend/internal/middlewares"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

func TestCreateReviewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReviewCreator(ctrl)

	tok := jwt.New(jwt.WithSecretKey("test-secret"))
	token, err := tok.Generate(context.Background(), 42)
	assert.NoError(t, err)

	newRequest := func(body []byte) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		return req
	}

	handler := middlewares.AuthMiddleware(tok)(NewCreateReviewHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		created := &models.ReviewDB{
			ID:         1,
			LocationID: 5,
			NoiseLevel: 2,
			LightLevel: 3,
			CrowdLevel: 1,
			UserID:     42,
		}
		mockSvc.EXPECT().
			Create(gomock.Any(), int64(42), int64(5), 2, 3, 1).
			Return(created, nil)

		body, _ := json.Marshal(ReviewRequest{
			LocationID: 5,
			NoiseLevel: 2,
			LightLevel: 3,
			CrowdLevel: 1,
		})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newRequest(body))

		assert.Equal(t, http.StatusCreated, w.Code)

		var got models.ReviewDB
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, *created, got)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newRequest([]byte("{invalid json}")))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ReviewErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid request body.", resp.Message)
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc.EXPECT().
			Create(gomock.Any(), int64(42), int64(999), 2, 3, 1).
			Return(nil, errors.New(`violates foreign key constraint "reviews_location_id_fkey"`))

		body, _ := json.Marshal(ReviewRequest{
			LocationID: 999,
			NoiseLevel: 2,
			LightLevel: 3,
			CrowdLevel: 1,
		})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newRequest(body))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp ReviewErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Internal server error.", resp.Message)
	})

	t.Run("missing token", func(t *testing.T) {
		body, _ := json.Marshal(ReviewRequest{LocationID: 5})
		req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no identity in context", func(t *testing.T) {
		body, _ := json.Marshal(ReviewRequest{LocationID: 5})
		req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(body))
		w := httptest.NewRecorder()

		NewCreateReviewHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp ReviewErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid authentication.", resp.Message)
	})
}
