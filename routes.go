package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"spinWheelServer/api"
	"spinWheelServer/feed"
	"spinWheelServer/game"
	"spinWheelServer/ws"
)

// newRouter wires every HTTP and WebSocket endpoint. feedSeries is nil when
// the price feed is disabled; the price endpoints then serve the seed point.
func newRouter(allowedOrigins []string, feedSeries *feed.Series, pollInterval time.Duration, wheelOpts []game.Option) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	// WebSocket endpoints
	r.Handle("/ws/wheel", ws.NewWheelHandler(allowedOrigins, wheelOpts...))

	series := feedSeries
	if series == nil {
		series = feed.NewSeries()
	}
	price := api.NewPriceHandler(series)

	// API endpoints
	r.Route("/api", func(rr chi.Router) {
		rr.Get("/health", api.HandleHealthCheck(feedSeries, pollInterval))
		rr.Post("/wheel/verify", ws.HandleVerifySpin)
		rr.Get("/price", price.Current)
		rr.Get("/price/window", price.Window)
	})

	return r
}
