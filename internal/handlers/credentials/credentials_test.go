package credentials

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/topups/internal/service/credentialservice"
)

func NewMock(t *testing.T) (*CredentialHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestGetCredentials(t *testing.T) {
	handler, service := NewMock(t)
	content := `{"type":"service_account","project_id":"topups"}`

	tests := []struct {
		name                string
		token               string
		prepareMock         func()
		expectedCode        int
		expectedBody        string
		expectedDisposition string
	}{
		{
			name:  "File served byte for byte",
			token: "good",
			prepareMock: func() {
				service.EXPECT().Open("good").Return("credentials.json", io.NopCloser(strings.NewReader(content)), nil)
			},
			expectedCode:        http.StatusOK,
			expectedBody:        content,
			expectedDisposition: `attachment; filename=credentials.json`,
		},
		{
			name:  "Unknown token",
			token: "bad",
			prepareMock: func() {
				service.EXPECT().Open("bad").Return("", nil, credentialservice.ErrUnknownToken)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"detail":"Unauthorized or unknown API token"}` + "\n",
		},
		{
			name:  "Missing header",
			token: "",
			prepareMock: func() {
				service.EXPECT().Open("").Return("", nil, credentialservice.ErrUnknownToken)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"detail":"Unauthorized or unknown API token"}` + "\n",
		},
		{
			name:  "Mapped file absent",
			token: "missing",
			prepareMock: func() {
				service.EXPECT().Open("missing").Return("", nil, &credentialservice.FileNotFoundError{Name: "branchs.json", Dir: "/etc/secrets"})
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"branchs.json not found in /etc/secrets"}` + "\n",
		},
		{
			name:  "Unexpected error",
			token: "good",
			prepareMock: func() {
				service.EXPECT().Open("good").Return("", nil, errors.New("permission denied"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal server error"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/get-credentials", nil)
			if tt.token != "" {
				r.Header.Set(TokenHeader, tt.token)
			}
			w := httptest.NewRecorder()

			handler.GetCredentials(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.expectedDisposition != "" {
				assert.Equal(t, tt.expectedDisposition, w.Header().Get("Content-Disposition"))
			}
		})
	}
}
