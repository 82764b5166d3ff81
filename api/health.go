package api

import (
	"net/http"
	"time"

	"spinWheelServer/feed"
	"spinWheelServer/ws"
)

/* =========================
   HEALTH CHECK ENDPOINT
========================= */

// HealthResponse represents the health check payload
type HealthResponse struct {
	Success       bool   `json:"success"`
	WheelSessions int64  `json:"wheelSessions"`
	PriceFeed     string `json:"priceFeed"`
	Message       string `json:"message"`
}

// HandleHealthCheck reports live wheel sessions and price feed freshness.
// A nil series means the feed is disabled.
// GET /api/health
func HandleHealthCheck(series *feed.Series, pollInterval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sendJSON(w, http.StatusOK, HealthResponse{
			Success:       true,
			WheelSessions: ws.ActiveSessions(),
			PriceFeed:     feedHealth(series, pollInterval, time.Now()),
			Message:       "Health check completed",
		})
	}
}

// feedHealth is "stale" once two polls in a row have been missed.
func feedHealth(series *feed.Series, pollInterval time.Duration, now time.Time) string {
	if series == nil {
		return "disabled"
	}
	updated := series.UpdatedAt()
	if updated.IsZero() {
		return "waiting"
	}
	if now.Sub(updated) > 2*pollInterval {
		return "stale"
	}
	return "ok"
}
