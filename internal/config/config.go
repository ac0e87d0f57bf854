package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config stores the application configuration. Values are loaded from
// environment variables, with optional loading from a .env file.
type Config struct {
	Addr      string
	DBDriver  string
	DBDSN     string
	StaticDir string
	SeedDemo  bool
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to defaults that run the app out of the box.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: error loading .env file: %v", err)
		}
	}

	return &Config{
		Addr:      getEnv("ADDR", ":8080"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite3"),
		DBDSN:     getEnv("DB_DSN", "friendlink.db"),
		StaticDir: getEnv("STATIC_DIR", "static"),
		SeedDemo:  getEnv("SEED_DEMO", "true") == "true",
	}
}

// getEnv retrieves the value of the environment variable named by the key.
// If the variable is not present, the defaultValue is returned.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
