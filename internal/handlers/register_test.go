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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: RegisterRequest{
				Email:    "a@x.com",
				Password: "pw123456",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "a@x.com", "pw123456").
					Return(&models.UserDB{ID: 1, Email: "a@x.com"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &RegisterResponse{
				Message: "User created successfully.",
				User:    RegisteredUser{ID: 1, Email: "a@x.com"},
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &RegisterErrorResponse{
				Message: "Please enter email and password.",
			},
		},
		{
			name: "missing email",
			inputBody: RegisterRequest{
				Password: "pw123456",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &RegisterErrorResponse{
				Message: "Please enter email and password.",
			},
		},
		{
			name: "missing password",
			inputBody: RegisterRequest{
				Email: "a@x.com",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &RegisterErrorResponse{
				Message: "Please enter email and password.",
			},
		},
		{
			name: "duplicate email",
			inputBody: RegisterRequest{
				Email:    "a@x.com",
				Password: "pw123456",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "a@x.com", "pw123456").
					Return(nil, errors.New(`duplicate key value violates unique constraint "users_email_key"`))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &RegisterErrorResponse{
				Message: "Internal server error.",
			},
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

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewRegisterHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &RegisterResponse{}
			default:
				respBody = &RegisterErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
