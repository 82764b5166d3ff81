package ws

import (
	"net/http"
	"slices"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"spinWheelServer/config"
)

var sessionCount int64

// ActiveSessions returns the number of connected wheel sessions.
func ActiveSessions() int64 {
	return atomic.LoadInt64(&sessionCount)
}

// newUpgrader accepts requests without an Origin header, from any origin when
// the list holds "*", and otherwise only from the listed origins.
func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowAll := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")
	return websocket.Upgrader{
		ReadBufferSize:  config.WSReadBufferSize,
		WriteBufferSize: config.WSWriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return allowAll || origin == "" || slices.Contains(allowedOrigins, origin)
		},
	}
}
