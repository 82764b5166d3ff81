package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"spinWheelServer/config"
)

func main() {
	// a missing .env is fine; WHEEL_CONFIG may come from the shell
	_ = config.Load(".env")

	logPath := flag.String("log", "", "write debug logs to this file")
	presetPath := flag.String("config", os.Getenv("WHEEL_CONFIG"), "wheel preset yaml")
	flag.Parse()

	logFile := setupLogging(*logPath)
	if logFile != nil {
		defer logFile.Close()
	}

	preset, err := config.LoadWheelPreset(*presetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid wheel config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	NewApp(screen, preset.EngineOptions()...).Run()
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty so log lines never scribble over the screen.
func setupLogging(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
