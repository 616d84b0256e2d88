package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mert/schoolhub/internal/app/models"
	"github.com/mert/schoolhub/internal/pkg/apperrors"
	"github.com/mert/schoolhub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestHandleAPIErrorValidation(t *testing.T) {
	c, w := testContext(t)

	err := apperrors.NewValidationError().
		Add("name", "name is required").
		Add("gradeId", "gradeId must reference an existing grade").
		ErrOrNil()
	HandleAPIError(c, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Fields map[string][]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "name")
	assert.Contains(t, body.Fields, "gradeId")
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperrors.ErrResourceNotFound, http.StatusNotFound},
		{"wrapped not found", apperrors.NewNotFoundError("student"), http.StatusNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", apperrors.ErrUserNotFound, http.StatusUnauthorized},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"row still referenced", apperrors.ErrConflict, http.StatusConflict},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := testContext(t)
			HandleAPIError(c, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func newTestAuthStack() (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func TestJWTAuthPlacesTenantOnContext(t *testing.T) {
	mw, jwtService := newTestAuthStack()

	token, _, err := jwtService.GenerateToken(&models.User{ID: 42, TenantID: 7, Email: "a@b.c"})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/probe", mw.JWTAuth(), func(c *gin.Context) {
		tenantID, ok := TenantFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"tenantId": tenantID})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TenantID int64 `json:"tenantId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.TenantID)
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	mw, _ := newTestAuthStack()

	router := gin.New()
	router.GET("/probe", mw.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// No header
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	mw, _ := newTestAuthStack()
	expiredIssuer := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "test",
	})

	token, _, err := expiredIssuer.GenerateToken(&models.User{ID: 1, TenantID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/probe", mw.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantFromContextWithoutMiddleware(t *testing.T) {
	c, _ := testContext(t)

	_, ok := TenantFromContext(c)
	assert.False(t, ok)
}
