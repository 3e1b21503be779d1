package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

const (
	requestIDHeader = "X-Request-Id"
	surfaceKey      = "surface"
)

// Surface names the part of the site a request is for.
type Surface string

const (
	SurfaceProxy   Surface = "proxy"
	SurfaceCatalog Surface = "catalog"
	SurfaceDocs    Surface = "docs"
	SurfaceHealth  Surface = "health"
	SurfaceOther   Surface = "other"
)

// SurfaceOf classifies a request path.
func SurfaceOf(path string) Surface {
	switch {
	case path == "/api/models":
		return SurfaceProxy
	case path == "/models" || strings.HasPrefix(path, "/models/") ||
		path == "/v1/catalog" || strings.HasPrefix(path, "/v1/catalog/"):
		return SurfaceCatalog
	case strings.HasPrefix(path, "/openapi") || path == "/site.json" || strings.HasPrefix(path, "/api/swagger/"):
		return SurfaceDocs
	case strings.HasSuffix(path, "/healthz") || strings.HasSuffix(path, "/readyz") || path == "/v1/version":
		return SurfaceHealth
	default:
		return SurfaceOther
	}
}

// RequestID tags every request with an X-Request-Id (kept from the caller when
// present) and the surface it targets. The id is also placed on the request
// context so upstream calls and platform errors carry it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			c.Request.Header.Set(requestIDHeader, requestID)
		}
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Set(requestIDHeader, requestID)
		c.Set(surfaceKey, SurfaceOf(c.Request.URL.Path))
		c.Request = c.Request.WithContext(platformerrors.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// RequestIDFromContext returns the request id stored in the gin context.
func RequestIDFromContext(c *gin.Context) string {
	if val, ok := c.Get(requestIDHeader); ok {
		if id, ok := val.(string); ok {
			return id
		}
	}
	return ""
}

// SurfaceFromContext returns the surface set by RequestID, classifying the
// path when the middleware did not run.
func SurfaceFromContext(c *gin.Context) Surface {
	if val, ok := c.Get(surfaceKey); ok {
		if surface, ok := val.(Surface); ok {
			return surface
		}
	}
	return SurfaceOf(c.Request.URL.Path)
}
