package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/construxhq/ops-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(svc jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(svc.JWTAuth()))
		r.Use(AuthRequired(svc.JWTAuth()))
		r.Get("/protected", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func requestWithToken(router *chi.Mux, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	svc := jwt.NewJWTService("test-secret")
	router := protectedRouter(svc)

	t.Run("missing token", func(t *testing.T) {
		rec := requestWithToken(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid access token", func(t *testing.T) {
		token, expiresAt, err := svc.GenerateAccessToken("user-1", "admin", time.Hour)
		require.NoError(t, err)
		assert.Greater(t, expiresAt, time.Now().Unix())

		rec := requestWithToken(router, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong token type", func(t *testing.T) {
		_, token, err := svc.JWTAuth().Encode(map[string]interface{}{
			"user_id": "user-1",
			"type":    "refresh",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		require.NoError(t, err)

		rec := requestWithToken(router, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := requestWithToken(router, "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := jwt.NewJWTService("other-secret")
		token, _, err := other.GenerateAccessToken("user-1", "admin", time.Hour)
		require.NoError(t, err)

		rec := requestWithToken(router, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
