package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate Limit Tiers
const (
	// Login / signup (Strict)
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// General (Default)
	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

// strictPaths are the credential endpoints that get the tight bucket.
var strictPaths = map[string]bool{
	"/api/login":       true,
	"/api/userSignup":  true,
	"/api/adminSignup": true,
}

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

func init() {
	go cleanupVisitors()
}

// getVisitor retrieves or creates a rate limiter for the given bucket key.
func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes old entries from the visitors map to prevent
// memory leaks.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimit buckets requests per principal when authenticated, per IP
// otherwise, with separate quotas for the strict and general tiers.
func RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, burst, tier := limitGeneral, burstGeneral, "general"
		if strictPaths[c.FullPath()] || strictPaths[c.Request.URL.Path] {
			limit, burst, tier = limitStrict, burstStrict, "strict"
		}

		identity := "ip:" + c.ClientIP()
		if principal := PrincipalFromContext(c); principal != nil {
			identity = "principal:" + principal.ID
		}

		key := fmt.Sprintf("%s:%s", identity, tier)
		if !getVisitor(key, limit, burst).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": http.StatusText(http.StatusTooManyRequests),
			})
			return
		}

		c.Next()
	}
}
