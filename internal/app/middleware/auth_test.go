package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campomarket/internal/app/config"
	"campomarket/internal/app/ds"
	"campomarket/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test"

func signToken(t *testing.T, userID uint, userRole role.Role, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "campomarket",
		},
		UserID: userID,
		Role:   userRole,
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newProtectedRouter(requiredRoles ...role.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Token:         testSecret,
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}
	am := NewAuthMiddleware(nil, cfg)

	router := gin.New()
	router.GET("/protected", am.WithAuthCheck(requiredRoles...), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func doProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWithAuthCheck_MissingHeader(t *testing.T) {
	router := newProtectedRouter()

	w := doProtected(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuthCheck_GarbageToken(t *testing.T) {
	router := newProtectedRouter()

	w := doProtected(router, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuthCheck_ExpiredToken(t *testing.T) {
	router := newProtectedRouter()

	token := signToken(t, 1, role.Consumer, time.Now().Add(-time.Minute))
	w := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuthCheck_WrongRole(t *testing.T) {
	router := newProtectedRouter(role.Producer)

	token := signToken(t, 1, role.Consumer, time.Now().Add(time.Hour))
	w := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWithAuthCheck_ValidToken(t *testing.T) {
	router := newProtectedRouter(role.Producer)

	token := signToken(t, 7, role.Producer, time.Now().Add(time.Hour))
	w := doProtected(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "7")
}

func TestWithAuthCheck_AnyAuthenticatedUser(t *testing.T) {
	// Без списка ролей достаточно валидного токена
	router := newProtectedRouter()

	token := signToken(t, 1, role.Consumer, time.Now().Add(time.Hour))
	w := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
