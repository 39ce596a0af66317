package response

import "github.com/gin-gonic/gin"

// Error writes the flat error shape the web client expects.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorWithHint adds a user-facing hint next to the diagnostic message.
func ErrorWithHint(c *gin.Context, statusCode int, message, hint string) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"message": hint,
	})
}

// ErrorWithDetails attaches structured detail, e.g. field validation
// failures.
func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}
