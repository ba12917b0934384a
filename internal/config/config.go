package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	DatabaseType    string
	DatabasePath    string
	DatabaseURL     string
	MigrationsPath  string
	StateRecordName string
	BackupPath      string

	SessionSecret   string
	SessionDuration time.Duration

	AudioPath       string
	TutorPollEvery  time.Duration
	ReportEvery     time.Duration
	AIResponseDelay time.Duration
	DemoSeedEnabled bool

	AWSRegion    string
	SESFromEmail string
	SESFromName  string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./tutorbuddy.db"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		StateRecordName: getEnv("STATE_RECORD_NAME", "ai-tutor-state"),
		BackupPath:      getEnv("BACKUP_PATH", "./backups"),

		SessionSecret:   getEnv("SESSION_SECRET", "dev-only-secret"),
		SessionDuration: getDuration("SESSION_DURATION", 24*time.Hour),

		AudioPath:       getEnv("AUDIO_PATH", "./static/audio"),
		TutorPollEvery:  getDuration("TUTOR_POLL_INTERVAL", 60*time.Second),
		ReportEvery:     getDuration("REPORT_INTERVAL", 7*24*time.Hour),
		AIResponseDelay: getDuration("AI_RESPONSE_DELAY", time.Second),
		DemoSeedEnabled: getBool("DEMO_SEED", true),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "TutorBuddy"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration reads a duration environment variable or returns a default value
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid duration for %s, using default %s", key, defaultValue)
	}
	return defaultValue
}

// getBool reads a boolean environment variable or returns a default value
func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
