package config

import "time"

/* =========================
   SERVER CONFIGURATION
========================= */

const (
	// Server settings
	DefaultPort = "8080"
	ServerHost  = "0.0.0.0"

	// Graceful shutdown budget
	ShutdownTimeout = 5 * time.Second
)

/* =========================
   WEBSOCKET CONFIGURATION
========================= */

const (
	// WebSocket settings
	WSReadDeadline  = 60 * time.Second
	WSWriteDeadline = 10 * time.Second
	WSPingInterval  = 30 * time.Second

	// Buffer sizes
	WSReadBufferSize  = 1024
	WSWriteBufferSize = 1024
	WSSendQueueSize   = 256

	// Message size limits
	MaxMessageSize = 64 * 1024 // 64KB
)

/* =========================
   WHEEL SESSIONS
========================= */

const (
	// One display refresh at ~60Hz
	FrameInterval = 16 * time.Millisecond

	// Client input limits
	MaxLabelLength = 40
	MaxSurfaceSize = 4096
)

/* =========================
   PRICE FEED
========================= */

const (
	// Upstream polling
	DefaultPollInterval = 150 * time.Second
	FeedRequestTimeout  = 10 * time.Second

	// Chart window
	VisiblePoints = 20
	ScrollStep    = 10

	// Seed point prepended on first load
	SeedPriceLabel = "Start"
	SeedPrice      = 5000
)
