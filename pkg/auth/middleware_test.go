package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		secret       string
		header       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Matching secret",
			secret:       "s3cret",
			header:       "s3cret",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Wrong secret",
			secret:       "s3cret",
			header:       "guess",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"unauthorized"}` + "\n",
		},
		{
			name:         "Missing header",
			secret:       "s3cret",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"unauthorized"}` + "\n",
		},
		{
			name:         "Unset secret rejects empty header",
			secret:       "",
			header:       "",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"unauthorized"}` + "\n",
		},
		{
			name:         "Unset secret rejects any header",
			secret:       "",
			header:       "anything",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"unauthorized"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/internal/topups/request", nil)
			if tt.header != "" {
				r.Header.Set(InternalAuthHeader, tt.header)
			}
			w := httptest.NewRecorder()

			InternalAuth(tt.secret)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
