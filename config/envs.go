package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP     string // Host IP for the server
	RESTPort   int    // Port for the REST API
	DBHost     string // Hostname or IP address for the database
	DBPort     int    // Port number for the database
	DBUser     string // Username for the database
	DBPassword string // Password for the database
	DBName     string // Name of the database
	RedisHost  string // Hostname or IP address for the leaderboard store
	RedisPort  int    // Port number for the leaderboard store
	GinMode    string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret  string // Secret key for JWT signing
	JWTIssuer  string // Issuer claim for JWTs
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		DBHost:     getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:     getEnvWithDefault("DB_USER", ""),
		DBPassword: getEnvWithDefault("DB_PASS", ""),
		DBName:     getEnvWithDefault("DB_NAME", "mazerunner"),
		RedisHost:  getEnvWithDefault("REDIS_HOST", "localhost"),
		RedisPort:  getEnvAsIntWithDefault("REDIS_PORT", 6379),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:  getEnvWithDefault("JWT_SECRET", "insecure-dev-secret"),
		JWTIssuer:  getEnvWithDefault("JWT_ISSUER", "mazerunner-api"),
		HostIP:     getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:   getEnvAsIntWithDefault("REST_PORT", 8080),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer
// or returns a default value if not set. A set but unparsable value is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
