package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisMemoryDB        int    `mapstructure:"REDIS_MEMORY_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Messaging webhook.
	WebhookAuthToken string `mapstructure:"WEBHOOK_AUTH_TOKEN"`
	AdminAPIKey      string `mapstructure:"ADMIN_API_KEY"`

	// Restaurant identity.
	BotName            string `mapstructure:"BOT_NAME"`
	RestaurantName     string `mapstructure:"RESTAURANT_NAME"`
	RestaurantLocation string `mapstructure:"RESTAURANT_LOCATION"`
	RestaurantPhone    string `mapstructure:"RESTAURANT_PHONE"`
	RestaurantTimings  string `mapstructure:"RESTAURANT_TIMINGS"`
	ParkingInfo        string `mapstructure:"PARKING_INFO"`

	// Conversation and slot locking.
	DefaultLanguage       string `mapstructure:"DEFAULT_LANGUAGE"`
	SessionTimeoutMinutes int    `mapstructure:"SESSION_TIMEOUT_MINUTES"`
	SessionSweepSeconds   int    `mapstructure:"SESSION_SWEEP_SECONDS"`
	SlotLockDurationMin   int    `mapstructure:"SLOT_LOCK_DURATION_MINUTES"`
	SlotLockSweepSeconds  int    `mapstructure:"SLOT_LOCK_SWEEP_SECONDS"`
	MinPartySize          int    `mapstructure:"MIN_PARTY_SIZE"`
	MaxPartySize          int    `mapstructure:"MAX_PARTY_SIZE"`

	// Reminder worker.
	ReminderLeadMinutes   int  `mapstructure:"REMINDER_LEAD_MINUTES"`
	ReminderWorkerEnabled bool `mapstructure:"REMINDER_WORKER_ENABLED"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tablebot")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_MEMORY_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("WEBHOOK_AUTH_TOKEN", "")
	viper.SetDefault("ADMIN_API_KEY", "")
	viper.SetDefault("BOT_NAME", "Server Sundharam")
	viper.SetDefault("RESTAURANT_NAME", "Royal Chef's Restaurant")
	viper.SetDefault("RESTAURANT_LOCATION", "123 Food Street, T Nagar, Chennai - 600017")
	viper.SetDefault("RESTAURANT_PHONE", "+91-9876543210")
	viper.SetDefault("RESTAURANT_TIMINGS", "11 AM - 11 PM (All days)")
	viper.SetDefault("PARKING_INFO", "Free valet parking available, sir! 50+ car capacity.")
	viper.SetDefault("DEFAULT_LANGUAGE", "en")
	viper.SetDefault("SESSION_TIMEOUT_MINUTES", 15)
	viper.SetDefault("SESSION_SWEEP_SECONDS", 300)
	viper.SetDefault("SLOT_LOCK_DURATION_MINUTES", 3)
	viper.SetDefault("SLOT_LOCK_SWEEP_SECONDS", 30)
	viper.SetDefault("MIN_PARTY_SIZE", 1)
	viper.SetDefault("MAX_PARTY_SIZE", 200)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 120)
	viper.SetDefault("REMINDER_WORKER_ENABLED", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SessionTimeout is the idle timeout applied to conversation sessions.
func SessionTimeout() time.Duration {
	return time.Duration(AppConfig.SessionTimeoutMinutes) * time.Minute
}

// SlotLockDuration is how long a temporary slot hold stays alive before auto-release.
func SlotLockDuration() time.Duration {
	return time.Duration(AppConfig.SlotLockDurationMin) * time.Minute
}
