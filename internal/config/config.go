package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries the process-level settings. The session core itself takes
// no configuration; everything here belongs to the serving surface.
type Config struct {
	HTTPAddr    string
	CORSOrigins []string
	LogLevel    string
	StaticDir   string
}

// Load reads configuration from the environment, with an optional .env file
// for local development. Every setting has a default; nothing is required.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:  getenv("FYP_ADDR", ":8080"),
		LogLevel:  getenv("FYP_LOG_LEVEL", "info"),
		StaticDir: getenv("FYP_STATIC_DIR", ""),
	}
	for _, o := range strings.Split(getenv("FYP_CORS_ORIGINS", ""), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	return cfg
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
