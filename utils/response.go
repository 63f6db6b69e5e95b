package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the uniform error body
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// SuccessResponse writes data as-is; the analysis result is already the
// response body, so no envelope is added
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
