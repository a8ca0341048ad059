package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-water-quality/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name             string
		mockSetup        func(tk *MockTokener, s *MockSessionChecker)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tk *MockTokener, s *MockSessionChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "RevokedSession",
			mockSetup: func(tk *MockTokener, s *MockSessionChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				s.EXPECT().CurrentUser(gomock.Any(), "sometoken").
					Return("", services.ErrNotAuthenticated)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "SessionStoreDown",
			mockSetup: func(tk *MockTokener, s *MockSessionChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				s.EXPECT().CurrentUser(gomock.Any(), "sometoken").
					Return("", services.ErrStorageUnavailable)
			},
			expectedStatus:   http.StatusInternalServerError,
			expectNextCalled: false,
		},
		{
			name: "ActiveSession",
			mockSetup: func(tk *MockTokener, s *MockSessionChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				s.EXPECT().CurrentUser(gomock.Any(), "validtoken").
					Return("alice", nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockTokener := NewMockTokener(ctrl)
			mockSessions := NewMockSessionChecker(ctrl)
			tt.mockSetup(mockTokener, mockSessions)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, "alice", GetUsernameFromContext(r.Context()))
				assert.Equal(t, "validtoken", GetTokenFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockSessions)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if !tt.expectNextCalled {
				assert.Contains(t, rr.Body.String(), `"error"`)
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(tk *MockTokener, s *MockSessionChecker)
		expectedStatus int
		wantUsername   string
		wantToken      string
	}{
		{
			name: "Anonymous",
			mockSetup: func(tk *MockTokener, s *MockSessionChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "RevokedSessionKeepsToken",
			mockSetup: func(tk *MockTokener, s *MockSessionChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("oldtoken", nil)
				s.EXPECT().CurrentUser(gomock.Any(), "oldtoken").
					Return("", services.ErrNotAuthenticated)
			},
			expectedStatus: http.StatusOK,
			wantToken:      "oldtoken",
		},
		{
			name: "ActiveSession",
			mockSetup: func(tk *MockTokener, s *MockSessionChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				s.EXPECT().CurrentUser(gomock.Any(), "validtoken").
					Return("alice", nil)
			},
			expectedStatus: http.StatusOK,
			wantUsername:   "alice",
			wantToken:      "validtoken",
		},
		{
			name: "SessionStoreDown",
			mockSetup: func(tk *MockTokener, s *MockSessionChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				s.EXPECT().CurrentUser(gomock.Any(), "validtoken").
					Return("", services.ErrStorageUnavailable)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockTokener := NewMockTokener(ctrl)
			mockSessions := NewMockSessionChecker(ctrl)
			tt.mockSetup(mockTokener, mockSessions)

			var gotUsername, gotToken string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUsername = GetUsernameFromContext(r.Context())
				gotToken = GetTokenFromContext(r.Context())
			})

			handler := OptionalAuthMiddleware(mockTokener, mockSessions)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.wantUsername, gotUsername)
			assert.Equal(t, tt.wantToken, gotToken)
		})
	}
}
