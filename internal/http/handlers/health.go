package handlers

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	opponentURL string
	probeClient *http.Client
	startTime   time.Time
	version     string
}

// NewHealthHandler creates a new health handler. opponentURL may be empty
// when the server runs fallback-only.
func NewHealthHandler(opponentURL, version string) *HealthHandler {
	return &HealthHandler{
		opponentURL: opponentURL,
		probeClient: &http.Client{Timeout: 2 * time.Second},
		startTime:   time.Now(),
		version:     version,
	}
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version,omitempty"`
	Uptime    string            `json:"uptime,omitempty"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Liveness returns simple alive status (for k8s liveness probe)
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness returns detailed health status. An unreachable opponent API is
// reported as a degraded check but does not fail readiness: rounds still
// complete through the local fallback.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)

	if h.opponentURL == "" {
		checks["opponent_api"] = "not configured (fallback only)"
	} else if err := h.probeOpponent(ctx); err != nil {
		checks["opponent_api"] = "degraded: " + err.Error()
	} else {
		checks["opponent_api"] = "healthy"
	}

	// Memory check
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	checks["memory_alloc_mb"] = formatMB(m.Alloc)

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}

// Health is a combined endpoint for basic health checks
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

func (h *HealthHandler) probeOpponent(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.opponentURL, nil)
	if err != nil {
		return err
	}
	resp, err := h.probeClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("status %s", resp.Status)
	}
	return nil
}

func formatMB(bytes uint64) string {
	mb := float64(bytes) / 1024 / 1024
	return fmt.Sprintf("%.2f", mb)
}
