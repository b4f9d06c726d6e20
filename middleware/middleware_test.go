package middleware

import (
	"TnenntAdmin/models"
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testKey = "task-signing-key"

func performRequest(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestErrorHandlerMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandlerMiddleware())
	router.GET("/custom", func(c *gin.Context) { c.Error(utils.NotFound("Order not found")) })
	router.GET("/plain", func(c *gin.Context) { c.Error(errors.New("db exploded")) })
	router.GET("/written", func(c *gin.Context) {
		c.Error(errors.New("ignored"))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := performRequest(router, http.MethodGet, "/custom", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Order not found", resp.Message)

	w = performRequest(router, http.MethodGet, "/plain", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", decode(t, w).Message)

	w = performRequest(router, http.MethodGet, "/written", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskToken_RoundTrip(t *testing.T) {
	token, err := GenerateTaskToken(testKey, "stores-on", time.Minute)
	require.NoError(t, err)

	claims, err := ParseTaskToken(testKey, token)
	require.NoError(t, err)
	assert.Equal(t, "stores-on", claims.Task)
	assert.Equal(t, TaskIssuer, claims.Issuer)

	_, err = ParseTaskToken("other-key", token)
	assert.Error(t, err)

	expired, err := GenerateTaskToken(testKey, "stores-on", -time.Minute)
	require.NoError(t, err)
	_, err = ParseTaskToken(testKey, expired)
	assert.Error(t, err)
}

func TestTaskToken_RejectsForeignTokens(t *testing.T) {
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &TaskClaims{
		Task:             "stores-on",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: TaskIssuer},
	}).SignedString([]byte(testKey))
	require.NoError(t, err)
	_, err = ParseTaskToken(testKey, noExpiry)
	assert.Error(t, err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &TaskClaims{
		Task: "stores-on",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte(testKey))
	require.NoError(t, err)
	_, err = ParseTaskToken(testKey, wrongIssuer)
	assert.Error(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &TaskClaims{Task: "stores-on"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseTaskToken(testKey, unsigned)
	assert.Error(t, err)
}

func TestTaskAuth(t *testing.T) {
	router := gin.New()
	router.POST("/run", TaskAuth(testKey, "stores-on"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	good, _ := GenerateTaskToken(testKey, "stores-on", time.Minute)
	otherTask, _ := GenerateTaskToken(testKey, "cleanup", time.Minute)

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{"valid", map[string]string{"Authorization": "Bearer " + good}, http.StatusNoContent},
		{"missing", nil, http.StatusUnauthorized},
		{"wrong scheme", map[string]string{"Authorization": "Basic " + good}, http.StatusUnauthorized},
		{"other task", map[string]string{"Authorization": "Bearer " + otherTask}, http.StatusUnauthorized},
		{"garbage", map[string]string{"Authorization": "Bearer abc.def.ghi"}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/run", tt.header)
			assert.Equal(t, tt.want, w.Code)
		})
	}

	unconfigured := gin.New()
	unconfigured.POST("/run", TaskAuth("", "stores-on"), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	w := performRequest(unconfigured, http.MethodPost, "/run", map[string]string{"Authorization": "Bearer " + good})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2)
	router := gin.New()
	router.GET("/notify", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, performRequest(router, http.MethodGet, "/notify", nil).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, performRequest(router, http.MethodGet, "/notify", nil).Code)

	// each client gets its own bucket
	w := performRequest(router, http.MethodGet, "/notify", map[string]string{"X-Forwarded-For": "10.0.0.9"})
	assert.Equal(t, http.StatusOK, w.Code)
}

type stubVerifier map[string]string

func (s stubVerifier) VerifySessionCookieAndCheckRevoked(_ context.Context, cookie string) (*auth.Token, error) {
	email, ok := s[cookie]
	if !ok {
		return nil, errors.New("revoked")
	}
	return &auth.Token{Claims: map[string]interface{}{"email": email}}, nil
}

func TestAuthMiddleware(t *testing.T) {
	store := services.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), services.CollectionAdmins, "a1", models.Admin{Email: "ops@tnennt.in", Name: "Ops"}))
	admins := services.NewAdminService(store, stubVerifier{"good": "ops@tnennt.in", "user": "user@tnennt.in"})

	router := gin.New()
	router.GET("/me", AuthMiddleware(admins, false), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentAdmin(c))
	})

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{"cookie", map[string]string{"Cookie": SessionCookieName + "=good"}, http.StatusOK},
		{"bearer", map[string]string{"Authorization": "Bearer good"}, http.StatusOK},
		{"no session", nil, http.StatusUnauthorized},
		{"revoked", map[string]string{"Cookie": SessionCookieName + "=stale"}, http.StatusUnauthorized},
		{"not an admin", map[string]string{"Cookie": SessionCookieName + "=user"}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodGet, "/me", tt.header)
			assert.Equal(t, tt.want, w.Code)
		})
	}

	w := performRequest(router, http.MethodGet, "/me", map[string]string{"Cookie": SessionCookieName + "=good"})
	var admin models.Admin
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &admin))
	assert.Equal(t, "a1", admin.ID)

	open := gin.New()
	open.GET("/me", AuthMiddleware(admins, true), func(c *gin.Context) { c.JSON(http.StatusOK, CurrentAdmin(c)) })
	w = performRequest(open, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@localhost")
}
