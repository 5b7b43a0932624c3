package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

const DefaultFrontendOrigin = "http://localhost:5173"

type Config struct {
	StripeSecretKey string
	AllowedOrigins  []string
	FrontendOrigin  string
	SuccessURL      string
	CancelURL       string
	Port            string
	ServeStatic     bool
	StaticDir       string
	AppEnv          string
	OTLPEndpoint    string
}

// Load builds the process configuration from the environment. It fails when the
// Stripe credential is absent so a misconfigured process never starts serving.
func Load() (*Config, error) {
	secret := os.Getenv("STRIPE_SECRET_KEY")
	if secret == "" {
		return nil, errors.New("missing STRIPE_SECRET_KEY in environment")
	}

	return &Config{
		StripeSecretKey: secret,
		AllowedOrigins:  splitCSV(getenv("ALLOWED_ORIGINS", DefaultFrontendOrigin)),
		FrontendOrigin:  getenv("FRONTEND_ORIGIN", DefaultFrontendOrigin),
		SuccessURL:      os.Getenv("SUCCESS_URL"),
		CancelURL:       os.Getenv("CANCEL_URL"),
		Port:            getenv("PORT", "4242"),
		ServeStatic:     getbool("SERVE_STATIC"),
		StaticDir:       getenv("STATIC_DIR", "dist"),
		AppEnv:          getenv("APP_ENV", "development"),
		OTLPEndpoint:    getenv("OTEL_EXPORTER_ENDPOINT", "jaeger:4318"),
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	return err == nil && v
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
