package middleware

import (
	"TnenntAdmin/config/logger"
	"TnenntAdmin/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandlerMiddleware renders the last error a handler attached with
// c.Error. CustomErrors keep their status and message, anything else is a 500.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			if customErr.StatusCode >= http.StatusInternalServerError {
				logger.L().Error("request failed",
					zap.String("path", c.FullPath()),
					zap.Int("status", customErr.StatusCode),
					zap.Error(err))
			}
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}

		logger.L().Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
