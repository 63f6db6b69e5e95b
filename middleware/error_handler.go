package middleware

import (
	"net/http"

	"ThreatLens/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware converts errors attached to the context into the
// uniform {"error": ...} body. Unknown errors become a 500.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
	}
}
