package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imhotep-finance/finance-service/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(svc *MockRegisterer)
		wantStatus int
	}{
		{
			name: "valid registration",
			body: `{"username":"alice","password":"longenough","email":"alice@example.com"}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), "alice", "longenough", "alice@example.com").
					Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate user",
			body: `{"username":"alice","password":"longenough","email":"alice@example.com"}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(services.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "malformed body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       `{"username":"alice","password":"pw","email":"alice@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad email",
			body:       `{"username":"alice","password":"longenough","email":"not-an-email"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockRegisterer(ctrl)
			if tt.setup != nil {
				tt.setup(svc)
			}

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			NewRegisterHandler(svc)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
