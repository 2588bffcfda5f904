package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(handler gin.HandlerFunc) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/test", handler, func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return httptest.NewServer(r)
}

func doGet(t *testing.T, url string) *http.Response {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	res.Body.Close()
	return res
}

// Local-counter path: no Redis configured, limiter must still block.
func TestRateLimitLocalCounter(t *testing.T) {
	redisClient = nil
	max := 2

	srv := newLimitedRouter(RateLimit(max, 10*time.Second))
	defer srv.Close()

	for i := 0; i < max; i++ {
		if res := doGet(t, srv.URL+"/test"); res.StatusCode != 200 {
			t.Fatalf("request %d: expected 200 got %d", i, res.StatusCode)
		}
	}

	if res := doGet(t, srv.URL+"/test"); res.StatusCode != 429 {
		t.Fatalf("expected 429 got %d", res.StatusCode)
	}
}

func TestGameRateLimitHeaders(t *testing.T) {
	redisClient = nil

	srv := newLimitedRouter(GameRateLimit(5, time.Minute))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/test")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	res.Body.Close()

	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	if got := res.Header.Get("X-GameRateLimit-Limit"); got != "5" {
		t.Fatalf("limit header = %q; want 5", got)
	}
	if got := res.Header.Get("X-GameRateLimit-Remaining"); got != "4" {
		t.Fatalf("remaining header = %q; want 4", got)
	}
}

// Integration-style test: runs only if REDIS_ADDR env is set.
func TestRateLimitRedisIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}
	pass := os.Getenv("REDIS_PASSWORD")
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}

	InitRedisRateLimiter(addr, pass, db)

	// small window for test
	max := 2
	srv := newLimitedRouter(RateLimit(max, 2*time.Second))
	defer srv.Close()

	for i := 0; i < max; i++ {
		if res := doGet(t, srv.URL+"/test"); res.StatusCode != 200 {
			t.Fatalf("expected 200 got %d", res.StatusCode)
		}
	}

	if res := doGet(t, srv.URL+"/test"); res.StatusCode != 429 {
		t.Fatalf("expected 429 got %d", res.StatusCode)
	}
}
