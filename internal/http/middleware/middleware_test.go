package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/minaret/internal/db"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("12345678")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "12345678"))
	assert.False(t, CheckPassword(hash, "87654321"))
}

func TestParseToken(t *testing.T) {
	token, err := GenerateJWT(42, "supersecret")
	require.NoError(t, err)

	id, err := parseToken(token, "supersecret")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = parseToken(token, "othersecret")
	assert.Error(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 42,
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("supersecret"))
	require.NoError(t, err)
	_, err = parseToken(expired, "supersecret")
	assert.Error(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": 42}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = parseToken(unsigned, "supersecret")
	assert.Error(t, err)
}

func TestJWTMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := db.NewMemoryStore()
	userID, err := store.CreateUser(context.Background(), "admin@example.com", "hash", nil)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", JWTMiddleware("supersecret", store), func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})

	valid, err := GenerateJWT(userID, "supersecret")
	require.NoError(t, err)
	unknown, err := GenerateJWT(userID+100, "supersecret")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"unknown user", "Bearer " + unknown, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}
