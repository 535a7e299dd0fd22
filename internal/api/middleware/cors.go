package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS builds the CORS policy from a comma-separated allow-list.
// An empty list falls back to allowing all origins, which is only
// appropriate for local development.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	domains := strings.Split(allowedDomains, ",")
	if allowedDomains == "" || len(domains) == 0 {
		conf.AllowAllOrigins = true
		conf.AllowCredentials = false
	} else {
		for i := range domains {
			domains[i] = strings.TrimSpace(domains[i])
		}
		conf.AllowOrigins = domains
	}

	return cors.New(conf)
}
