package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecaptchaV2Facade_Verify(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		expected    bool
		expectError bool
	}{
		{
			name: "Success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "shared-secret", r.PostForm.Get("secret"))
				assert.Equal(t, "answer-token", r.PostForm.Get("response"))
				w.Write([]byte(`{"success": true}`))
			},
			expected: true,
		},
		{
			name: "Rejected",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
			},
			expected: false,
		},
		{
			name: "MalformedResponse",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
			expectError: true,
		},
		{
			name: "ServerError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			facade := NewRecaptchaV2Facade("shared-secret", WithVerifyURL(srv.URL))

			ok, err := facade.Verify(context.Background(), "answer-token")
			if tt.expectError {
				assert.Error(t, err)
				assert.False(t, ok)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, ok)
			}
		})
	}
}

func TestRecaptchaV2Facade_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use

	facade := NewRecaptchaV2Facade("shared-secret", WithVerifyURL(srv.URL))

	ok, err := facade.Verify(context.Background(), "answer-token")
	assert.Error(t, err)
	assert.False(t, ok)
}
