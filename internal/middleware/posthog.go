package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/money_fx_service/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks API usage events with PostHog.
// Authenticated calls are attributed to the client ID, anonymous ones to the caller IP.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// "/api/v1/exchange-rates/:from/:to" -> "api_v1_exchange-rates_:from_:to"
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}
		if degraded := c.Writer.Header().Get(DegradedHeader); degraded != "" {
			props["degraded"] = true
		}

		posthogClient.Enqueue(distinctID(c), eventName, props)
	}
}

func distinctID(c *gin.Context) string {
	if clientID, ok := GetClientIDFromContext(c); ok {
		return clientID
	}
	return "ip:" + c.ClientIP()
}
