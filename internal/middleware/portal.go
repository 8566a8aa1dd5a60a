package middleware

import (
	"context"
	"net/http"
	"strings"

	"estatelink/internal/domain"
	"estatelink/internal/pkg/slug"

	"github.com/gin-gonic/gin"
)

// PortalResolver looks up a property by its portal subdomain.
type PortalResolver interface {
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Property, error)
}

// ResolvePortal extracts the portal subdomain from the request and loads the
// matching property into the gin context under portal_property_id /
// portal_property.
//
// The subdomain comes from the X-Portal-Subdomain header when present
// (frontends behind a shared host), otherwise from the Host header with the
// configured suffix stripped, e.g. maple-court-12.estatelink.local.
func ResolvePortal(resolver PortalResolver, portalSuffix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub := strings.TrimSpace(c.GetHeader("X-Portal-Subdomain"))
		if sub == "" {
			sub = subdomainFromHost(c.Request.Host, portalSuffix)
		}
		if sub == "" || !slug.Valid(sub) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "PORTAL_NOT_FOUND", "message": "Unknown property portal"},
			})
			return
		}

		prop, err := resolver.GetBySubdomain(c.Request.Context(), sub)
		if err != nil || prop == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "PORTAL_NOT_FOUND", "message": "Unknown property portal"},
			})
			return
		}
		if !prop.PortalEnabled {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "PORTAL_DISABLED", "message": "This property portal is disabled"},
			})
			return
		}

		c.Set("portal_property_id", prop.ID)
		c.Set("portal_property", prop)

		c.Next()
	}
}

// PortalProperty returns the property resolved by ResolvePortal, or nil when
// the handler is not behind the portal middleware.
func PortalProperty(c *gin.Context) *domain.Property {
	v, ok := c.Get("portal_property")
	if !ok {
		return nil
	}
	prop, _ := v.(*domain.Property)
	return prop
}

func subdomainFromHost(host, suffix string) string {
	// Strip port if present
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	if suffix == "" || !strings.HasSuffix(host, "."+suffix) {
		return ""
	}

	sub := strings.TrimSuffix(host, "."+suffix)
	// Skip www prefix, use the next label if available
	if strings.HasPrefix(sub, "www.") {
		sub = strings.TrimPrefix(sub, "www.")
	}
	if strings.Contains(sub, ".") || sub == "www" {
		return ""
	}
	return sub
}
