package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/internal/auth"
	"rental-backend/internal/config"
	"rental-backend/internal/models"
)

func newTestManager() *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "rental-backend"
	return auth.NewJWTManager(cfg)
}

func TestAuthenticateInjectsClaims(t *testing.T) {
	manager := newTestManager()
	user := &models.User{ID: uuid.New(), Email: "owner@example.com"}
	token, err := manager.GenerateToken(user)
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		gotID = id
		email, ok := GetEmailFromContext(r.Context())
		require.True(t, ok)
		gotEmail = email
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	NewAuthMiddleware(manager).Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, gotID)
	assert.Equal(t, user.Email, gotEmail)
}

func TestAuthenticateRejections(t *testing.T) {
	manager := newTestManager()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})
	handler := NewAuthMiddleware(manager).Authenticate(next)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed", "Bearer"},
		{"bad token", "Bearer not.a.token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetUserIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetUserIDFromContext(req.Context())
	assert.False(t, ok)
}
