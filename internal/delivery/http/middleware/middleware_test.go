package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"portfolio-backend/pkg/apperror"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	t.Run("echoes origin with credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://anything.example")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://anything.example", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("answers preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "content-type, x-custom")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "POST", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "content-type, x-custom", w.Header().Get("Access-Control-Allow-Headers"))
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperror.Unprocessable("validation failed", []string{"Email: is required"}, nil))
	})
	r.GET("/raw", func(c *gin.Context) {
		_ = c.Error(errors.New("secret internals"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"detail":"validation failed"`)
	assert.Contains(t, w.Body.String(), `"errors":["Email: is required"]`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raw", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret internals")
}

func TestRequestIDPropagates(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestRateLimitMiddlewareInMemory(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(ContactRateLimitConfig(2, time.Minute, nil)))
	r.POST("/contact", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))
		codes = append(codes, w.Code)
		if i == 2 {
			assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestMemoryLimiterWindowReset(t *testing.T) {
	m := &memoryLimiter{}
	cfg := ContactRateLimitConfig(1, time.Second, nil)
	start := time.Now()

	count, _ := m.check("k", cfg, start)
	assert.Equal(t, 1, count)
	count, _ = m.check("k", cfg, start.Add(500*time.Millisecond))
	assert.Equal(t, 2, count)
	count, _ = m.check("k", cfg, start.Add(2*time.Second))
	assert.Equal(t, 1, count, "counter resets after the window")
}

func TestMemoryLimiterCountsAgainstLiveEntry(t *testing.T) {
	now := time.Now()
	m := &memoryLimiter{nextSweep: now.Add(time.Hour)}
	cfg := ContactRateLimitConfig(5, time.Minute, nil)

	stale := &rateLimitEntry{count: 3, resetAt: now.Add(time.Minute)}
	m.entries.Store("k", stale)

	// Hold the entry while check is in flight, then evict it the way sweep does
	stale.mu.Lock()
	done := make(chan int)
	go func() {
		count, _ := m.check("k", cfg, now)
		done <- count
	}()
	time.Sleep(20 * time.Millisecond)
	stale.evicted = true
	m.entries.Delete("k")
	stale.mu.Unlock()

	assert.Equal(t, 1, <-done)

	live, ok := m.entries.Load("k")
	require.True(t, ok)
	assert.Equal(t, 1, live.(*rateLimitEntry).count)
	assert.Equal(t, 3, stale.count, "evicted entry is not incremented")
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeadersMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
