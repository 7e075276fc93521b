// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables

	"github.com/joho/godotenv" // Loads a .env file into the environment
)

type Config struct { // Config struct holds all configuration values
	Port          string // HTTP port the server listens on
	DBPath        string // Path to the SQLite database file
	MediaDir      string // Directory for uploaded video files
	CreateAdmin   bool   // Whether to seed a default staff account on startup
	AdminUsername string // Username of the seeded staff account
	AdminEmail    string // Email of the seeded staff account
	AdminPassword string // Password of the seeded staff account
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present (missing file is fine)

	return &Config{
		Port:          getEnv("PORT", "8080"),                 // Get port or use default
		DBPath:        getEnv("DB_PATH", "data.db"),           // Get DB path or use default
		MediaDir:      getEnv("MEDIA_DIR", "media"),           // Get media dir or use default
		CreateAdmin:   getEnv("CREATE_ADMIN", "") == "true",   // Only seed when explicitly enabled
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),      // Seed account username
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"), // Seed account email
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),           // No default password on purpose
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
