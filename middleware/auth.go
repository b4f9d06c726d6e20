package middleware

import (
	"TnenntAdmin/models"
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeyAdmin   = "admin"
	SessionCookieName = "session"
)

// sessionToken reads the session cookie, or a Bearer token when no cookie
// is sent.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthMiddleware admits requests from a verified admin session and stores
// the admin in the context. disabled lets every request through as a local
// admin.
func AuthMiddleware(admins *services.AdminService, disabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if disabled {
			c.Set(ContextKeyAdmin, &models.Admin{ID: "local", Email: "admin@localhost", Name: "Local admin"})
			c.Next()
			return
		}

		token := sessionToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		admin, err := admins.VerifySession(c.Request.Context(), token)
		if err != nil {
			utils.ErrorResponse(c, utils.StatusCode(err), "Unauthorized")
			return
		}

		c.Set(ContextKeyAdmin, admin)
		c.Next()
	}
}

// CurrentAdmin returns the admin AuthMiddleware stored, if any.
func CurrentAdmin(c *gin.Context) *models.Admin {
	v, ok := c.Get(ContextKeyAdmin)
	if !ok {
		return nil
	}
	admin, _ := v.(*models.Admin)
	return admin
}
