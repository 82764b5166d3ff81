package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	portEnvName           = "PORT"
	allowedOriginsEnvName = "ALLOWED_ORIGINS"
	priceFeedURLEnvName   = "PRICE_FEED_URL"
	pollIntervalEnvName   = "PRICE_POLL_INTERVAL"
	wheelConfigEnvName    = "WHEEL_CONFIG"
)

// Load reads a .env file into the process environment. A missing file is
// not fatal; plain environment variables still apply.
func Load(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Env is the process configuration read from the environment.
type Env struct {
	Port           string
	AllowedOrigins []string
	PriceFeedURL   string
	PollInterval   time.Duration
	WheelConfig    string
}

// Address is the listen address for the HTTP server.
func (e Env) Address() string {
	return ServerHost + ":" + e.Port
}

func FromEnv() (Env, error) {
	env := Env{
		Port:           os.Getenv(portEnvName),
		AllowedOrigins: splitList(os.Getenv(allowedOriginsEnvName)),
		PriceFeedURL:   strings.TrimRight(os.Getenv(priceFeedURLEnvName), "/"),
		PollInterval:   DefaultPollInterval,
		WheelConfig:    os.Getenv(wheelConfigEnvName),
	}
	if env.Port == "" {
		env.Port = DefaultPort
	}
	if len(env.AllowedOrigins) == 0 {
		env.AllowedOrigins = []string{"*"}
	}

	if raw := os.Getenv(pollIntervalEnvName); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Env{}, fmt.Errorf("invalid %s: %w", pollIntervalEnvName, err)
		}
		if d <= 0 {
			return Env{}, fmt.Errorf("invalid %s: must be positive", pollIntervalEnvName)
		}
		env.PollInterval = d
	}

	if env.PriceFeedURL == "" {
		log.Printf("⚠️  Warning: %s not set, price feed disabled", priceFeedURLEnvName)
	}

	return env, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
