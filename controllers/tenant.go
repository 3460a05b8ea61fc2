// controllers/tenant.go
package controllers

import (
	"errors"
	"net/http"
	"salonbook-backend/config"
	"salonbook-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TenantResolver maps the :tenantSlug path segment to a tenant ID and
// injects it into the request context. Inactive or unsubscribed stores
// look exactly like missing ones to the public API.
func TenantResolver() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("tenantSlug")
		if slug == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
			return
		}

		var tenant models.Tenant
		if err := config.DB.Where("slug = ?", slug).First(&tenant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Store '" + slug + "' not found"})
			} else {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			}
			return
		}

		if !tenant.Bookable() {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "This store is currently unavailable"})
			return
		}

		c.Set("tenantId", tenant.ID.String())
		c.Set("tenantSlug", tenant.Slug)

		c.Next()
	}
}
