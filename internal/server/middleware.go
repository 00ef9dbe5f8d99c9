package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"artwork-auctions/internal/auth"
	"artwork-auctions/internal/metrics"
	"artwork-auctions/services/auction/helpers"
	"artwork-auctions/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestLoggerMiddleware tags the request with an id and logs it with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(requestIDHeader)
	if !utils.ValidID(requestID) {
		requestID = utils.GenerateID()
	}
	c.Set(requestIDKey, requestID)
	c.Header(requestIDHeader, requestID)

	c.Next() // process request

	fields := map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	}
	if userID, ok := helpers.RequesterID(c); ok {
		fields["user_id"] = userID
	}
	utils.Info("HTTP Request", fields)
}

// MetricsMiddleware records request count and latency per route template
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

// TimeoutMiddleware bounds the request context handed to the services
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

var errMissingToken = errors.New("missing bearer token")

// RequireAuth resolves the bearer token into the caller's user id
func RequireAuth(resolver auth.ClaimsResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			utils.JSONAbort(c, http.StatusUnauthorized, errMissingToken, "authentication required")
			utils.Warn("RequireAuth: missing bearer token", map[string]any{"path": c.Request.URL.Path})
			return
		}

		userID, err := resolver.Resolve(token)
		if err != nil {
			utils.JSONAbort(c, http.StatusUnauthorized, err, "invalid token")
			utils.Warn("RequireAuth: token rejected", map[string]any{"path": c.Request.URL.Path, "error": err.Error()})
			return
		}

		c.Set(helpers.RequesterIDKey, userID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserRateLimiter hands out one token bucket per authenticated user
type UserRateLimiter struct {
	mu       sync.Mutex
	limiters map[int64]*userLimiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func NewUserRateLimiter(rps float64, burst int) *UserRateLimiter {
	return &UserRateLimiter{
		limiters: make(map[int64]*userLimiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow consumes one token from userID's bucket
func (l *UserRateLimiter) Allow(userID int64) bool {
	l.mu.Lock()
	entry, ok := l.limiters[userID]
	if !ok {
		entry = &userLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[userID] = entry
	}
	entry.lastSeen = l.now()
	l.mu.Unlock()
	return entry.limiter.Allow()
}

// Cleanup drops buckets not used for longer than idle and returns how many it removed.
// A dropped user starts again with a full bucket.
func (l *UserRateLimiter) Cleanup(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	removed := 0
	for userID, entry := range l.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(l.limiters, userID)
			removed++
		}
	}
	return removed
}

// StartCleanup runs Cleanup every interval until ctx is done
func (l *UserRateLimiter) StartCleanup(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := l.Cleanup(idle); removed > 0 {
					utils.Debug("RateLimiter: evicted idle buckets", map[string]any{"removed": removed})
				}
			}
		}
	}()
}

// Len reports how many users currently hold a bucket
func (l *UserRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

var errRateLimited = errors.New("rate limit exceeded")

// Middleware rejects callers over their budget with 429. It must run after RequireAuth.
func (l *UserRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := helpers.RequesterID(c)
		if !ok {
			c.Next()
			return
		}
		if !l.Allow(userID) {
			utils.JSONAbort(c, http.StatusTooManyRequests, errRateLimited, "too many requests")
			utils.Warn("RateLimiter: request throttled", map[string]any{"user_id": userID, "path": c.FullPath()})
			return
		}
		c.Next()
	}
}
