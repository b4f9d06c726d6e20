package middleware

import (
	"TnenntAdmin/utils"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const TaskIssuer = "tnennt-scheduler"

// TaskClaims identify a scheduled job calling a task endpoint.
type TaskClaims struct {
	Task string `json:"task"`
	jwt.RegisteredClaims
}

// GenerateTaskToken signs a token that lets a scheduler trigger task.
func GenerateTaskToken(signingKey, task string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &TaskClaims{
		Task: task,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TaskIssuer,
			Subject:   task,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingKey))
}

func ParseTaskToken(signingKey, tokenString string) (*TaskClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TaskClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(signingKey), nil
	}, jwt.WithIssuer(TaskIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*TaskClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// TaskAuth accepts only HS256 bearer tokens issued for task.
func TaskAuth(signingKey, task string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if signingKey == "" {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "Task endpoints are not configured")
			return
		}

		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Bearer token required")
			return
		}
		claims, err := ParseTaskToken(signingKey, parts[1])
		if err != nil || claims.Task != task {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid task token")
			return
		}
		c.Next()
	}
}
