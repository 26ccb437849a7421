package middleware

import (
	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// DegradedHeader is set on responses built from stale, fallback or mock rates.
const DegradedHeader = "X-Rates-Degraded"

// MarkDegraded sets DegradedHeader when any of sources is degraded.
func MarkDegraded(c *gin.Context, sources ...domain.RateSource) {
	for _, s := range sources {
		if s.Degraded() {
			c.Header(DegradedHeader, "true")
			return
		}
	}
}
