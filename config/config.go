package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
	Mode string // gin mode: debug, release, test
}

type StorageConfig struct {
	SQLitePath  string
	DatabaseURL string // when set, postgres is used instead of sqlite
	Seed        bool
}

type RemoteSyncConfig struct {
	URL      string
	Secret   string
	Issuer   string
	Schedule string // cron expression, empty disables periodic sync
}

type TwilioConfig struct {
	AccountSID   string
	AuthToken    string
	WhatsAppFrom string // e.g. "whatsapp:+14155238886"
}

type CronConfig struct {
	AlertSchedule    string
	ReminderSchedule string
}

type Config struct {
	AppName string
	Server  ServerConfig
	Storage StorageConfig
	Remote  RemoteSyncConfig
	Twilio  TwilioConfig
	Cron    CronConfig
}

// Load reads configuration from the environment, with an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Info: no .env file loaded: %v", err)
	}

	return &Config{
		AppName: getEnv("APP_NAME", "aqarcrm"),
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Mode: getEnv("GIN_MODE", "release"),
		},
		Storage: StorageConfig{
			SQLitePath:  getEnv("SQLITE_PATH", "aqarcrm.db"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			Seed:        getEnvBool("SEED_DEMO_DATA", false),
		},
		Remote: RemoteSyncConfig{
			URL:      getEnv("REMOTE_SYNC_URL", ""),
			Secret:   getEnv("REMOTE_SYNC_SECRET", ""),
			Issuer:   getEnv("REMOTE_SYNC_ISSUER", "aqarcrm"),
			Schedule: getEnv("REMOTE_SYNC_SCHEDULE", ""),
		},
		Twilio: TwilioConfig{
			AccountSID:   getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:    getEnv("TWILIO_AUTH_TOKEN", ""),
			WhatsAppFrom: getEnv("TWILIO_WHATSAPP_FROM", ""),
		},
		Cron: CronConfig{
			AlertSchedule:    getEnv("ALERT_CRON", "15 0 * * *"),
			ReminderSchedule: getEnv("REMINDER_CRON", "@hourly"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) is not a bool, using default %t", key, valStr, defaultValue)
		return defaultValue
	}
	return valBool
}
