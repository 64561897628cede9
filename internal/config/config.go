package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL           string
	RedisURL              string
	ServerAddr            string  // Address the HTTP server listens on
	JWTSecret             string  // Secret key for JWT token signing
	JWTTTL                int     // JWT token expiration time in hours
	SeedDemoData          bool    // Populate an empty database with demo users/services
	RateLimitRPS          float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst        int     // Burst size for rate limiting
	RateLimitAuthRPS      float64 // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst    int     // Burst size for auth endpoints
	RateLimitBookingRPS   float64 // Rate limit for booking creation (stricter)
	RateLimitBookingBurst int     // Burst size for booking creation
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		RedisURL:              getEnv("REDIS_URL", ""),
		ServerAddr:            getEnv("SERVER_ADDR", ":8080"),
		JWTSecret:             getEnv("JWT_SECRET", ""),
		JWTTTL:                getEnvInt("JWT_TTL_HOURS", 24),
		SeedDemoData:          getEnvBool("SEED_DEMO_DATA", false),
		RateLimitRPS:          getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:        getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:      getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst:    getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
		RateLimitBookingRPS:   getEnvFloat("RATE_LIMIT_BOOKING_RPS", 2),
		RateLimitBookingBurst: getEnvInt("RATE_LIMIT_BOOKING_BURST", 5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
