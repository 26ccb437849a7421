package middleware

import "github.com/gin-gonic/gin"

// clientIDKey is the key used to store the authenticated client's ID (the JWT subject).
const clientIDKey = contextKey("clientID")

// GetClientIDFromContext retrieves the authenticated client ID from the request context.
// It returns the client ID and a boolean indicating if it was found.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	clientID, ok := c.Request.Context().Value(clientIDKey).(string)
	if !ok || clientID == "" {
		return "", false
	}
	return clientID, true
}
