package response

import (
	"github.com/gin-gonic/gin"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/error/code"
)

// FieldError is a single failed validation constraint
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error writes the error body for a known error code
func Error(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), gin.H{
		"error": code.GetMessage(errorCode),
	})
}

// ErrorWithMessage writes an error body with a custom message
func ErrorWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), gin.H{
		"error": message,
	})
}

// AbortError writes the error body and aborts the handler chain
func AbortError(c *gin.Context, errorCode int) {
	Error(c, errorCode)
	c.Abort()
}

// ValidationError writes the field-level error list for a failed submission
func ValidationError(c *gin.Context, errs []FieldError) {
	c.JSON(code.StatusBadRequest, gin.H{
		"errors": errs,
	})
}
