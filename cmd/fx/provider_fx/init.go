package provider_fx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"hermes/pkg/provider"
)

var Module = fx.Provide(
	provideProvider)

func provideProvider() provider.Provider {
	return provider.NewDummyProvider(provider.Config{
		CallbackURL: CallbackURL(),
		SuccessRate: floatEnv("PROVIDER_SUCCESS_RATE", 0.8),
		MinDelay:    durationEnvMs("PROVIDER_MIN_DELAY_MS", 2000*time.Millisecond),
		MaxDelay:    durationEnvMs("PROVIDER_MAX_DELAY_MS", 5000*time.Millisecond),
	})
}

// CallbackURL is where the provider posts settlement webhooks back to us.
func CallbackURL() string {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3001"
	}
	return baseURL + "/webhooks/payments"
}

func floatEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default", key, raw)
		return fallback
	}
	return value
}

func durationEnvMs(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("invalid %s=%q, using default", key, raw)
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
