package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

func TestSuggestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSuggester(ctrl)

	suggestions := &models.Suggestions{
		Suggestions: []models.Suggestion{
			{Name: "Central Library", Type: "library", Reason: "Enforced quiet and soft lighting"},
			{Name: "Botanic Garden", Type: "park", Reason: "Low crowds on weekday mornings"},
		},
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "success",
			inputBody: SuggestRequest{Message: "somewhere quiet to read"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Suggest(gomock.Any(), "somewhere quiet to read").
					Return(suggestions, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing message",
			inputBody:    SuggestRequest{},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "provider failure",
			inputBody: SuggestRequest{Message: "somewhere quiet to read"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Suggest(gomock.Any(), "somewhere quiet to read").
					Return(nil, errors.New("provider unavailable"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/suggest", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewSuggestHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			switch tt.expectedCode {
			case http.StatusOK:
				var got models.Suggestions
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, suggestions.Suggestions, got.Suggestions)
			case http.StatusBadRequest:
				var resp SuggestErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Message is required.", resp.Error)
			default:
				var resp SuggestErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Failed to get suggestions.", resp.Error)
			}
		})
	}
}
