package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/vidfetch/internal/auth/domain"
	"github.com/allisson/vidfetch/internal/auth/http/mocks"
)

func setupAuthMiddlewareRouter(authUseCase *mocks.MockAuthUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.Default()

	router := gin.New()
	router.Use(AuthenticationMiddleware(authUseCase, logger))
	router.GET("/protected", func(c *gin.Context) {
		subject, ok := GetSubject(c.Request.Context())
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no subject"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})
	return router
}

func TestAuthenticationMiddleware(t *testing.T) {
	t.Run("allows request with valid token and stores subject", func(t *testing.T) {
		mockUseCase := new(mocks.MockAuthUseCase)
		router := setupAuthMiddlewareRouter(mockUseCase)

		mockUseCase.On("Authenticate", mock.Anything, "valid-token").Return("admin", nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin")

		mockUseCase.AssertExpectations(t)
	})

	t.Run("accepts case-insensitive bearer prefix", func(t *testing.T) {
		mockUseCase := new(mocks.MockAuthUseCase)
		router := setupAuthMiddlewareRouter(mockUseCase)

		mockUseCase.On("Authenticate", mock.Anything, "valid-token").Return("admin", nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "bearer valid-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("rejects request without authorization header", func(t *testing.T) {
		mockUseCase := new(mocks.MockAuthUseCase)
		router := setupAuthMiddlewareRouter(mockUseCase)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		mockUseCase.AssertNotCalled(t, "Authenticate")
	})

	t.Run("rejects non-bearer authorization scheme", func(t *testing.T) {
		mockUseCase := new(mocks.MockAuthUseCase)
		router := setupAuthMiddlewareRouter(mockUseCase)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Authenticate")
	})

	t.Run("rejects empty bearer token", func(t *testing.T) {
		mockUseCase := new(mocks.MockAuthUseCase)
		router := setupAuthMiddlewareRouter(mockUseCase)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer ")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Authenticate")
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		mockUseCase := new(mocks.MockAuthUseCase)
		router := setupAuthMiddlewareRouter(mockUseCase)

		mockUseCase.On("Authenticate", mock.Anything, "bad-token").
			Return("", authDomain.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		mockUseCase.AssertExpectations(t)
	})
}
