package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"spinWheelServer/config"
	"spinWheelServer/feed"
)

func main() {
	// Load .env file
	if err := config.Load(".env"); err != nil {
		log.Println("⚠️  Warning: .env file not found, using environment variables")
	} else {
		log.Println("✅ Loaded environment variables from .env")
	}

	env, err := config.FromEnv()
	if err != nil {
		log.Fatal("❌ Invalid configuration: ", err)
	}

	preset, err := config.LoadWheelPreset(env.WheelConfig)
	if err != nil {
		log.Fatal("❌ Invalid wheel config: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Price feed poller (optional)
	var series *feed.Series
	if env.PriceFeedURL != "" {
		series = feed.NewSeries()
		poller := feed.NewPoller(feed.NewClient(env.PriceFeedURL, nil), series, env.PollInterval)
		g.Go(func() error { return poller.Run(ctx) })
	}

	srv := &http.Server{
		Addr:    env.Address(),
		Handler: newRouter(env.AllowedOrigins, series, env.PollInterval, preset.EngineOptions()),
	}

	g.Go(func() error {
		log.Printf("🚀 Server starting on %s", srv.Addr)
		log.Println("")
		log.Println("📡 WebSocket Endpoints:")
		log.Printf("   ws://localhost:%s/ws/wheel - Spin-the-wheel session", env.Port)
		log.Println("")
		log.Println("🔌 API Endpoints:")
		log.Println("   GET  /api/health - Health check (sessions + price feed)")
		log.Println("   POST /api/wheel/verify - Verify a revealed spin")
		log.Println("   GET  /api/price - Current price, market status, lowest price")
		log.Println("   GET  /api/price/window - Chart window (?start=N&jump=prev|next|latest)")
		log.Println("")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("🛑 Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("❌ Server error: ", err)
	}
	log.Println("👋 Server stopped")
}
