package utils

import (
	"github.com/gin-gonic/gin"

	"hostel-backend/apperr"
)

// JSONMessage writes a success envelope carrying only a message.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": true, "message": message})
}

// JSONError writes the error envelope for a service error, using the
// central status mapping.
func JSONError(c *gin.Context, err error) {
	httpErr := apperr.MapToHTTP(err)
	c.JSON(httpErr.StatusCode, gin.H{"success": false, "error": httpErr.Message, "code": httpErr.Code})
}

// JSONBadRequest writes a 400 for malformed payloads before any service runs.
func JSONBadRequest(c *gin.Context, message string) {
	c.JSON(400, gin.H{"success": false, "error": message, "code": "INVALID_PAYLOAD"})
}
