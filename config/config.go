package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	SessionSecret     string `mapstructure:"SESSION_SECRET"`

	// Firebase configuration.
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseStorageBucket   string `mapstructure:"FIREBASE_STORAGE_BUCKET"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Session lifecycle.
	IdleTimeoutMinutes  int `mapstructure:"IDLE_TIMEOUT_MINUTES"`
	SessionTokenHours   int `mapstructure:"SESSION_TOKEN_HOURS"`
	ReminderHorizonDays int `mapstructure:"REMINDER_HORIZON_DAYS"`

	// Storage backend: "firebase" or "cloudinary".
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`

	// Transactional email API credentials (all four are required to send).
	EmailServiceID  string `mapstructure:"EMAIL_SERVICE_ID"`
	EmailTemplateID string `mapstructure:"EMAIL_TEMPLATE_ID"`
	EmailPublicKey  string `mapstructure:"EMAIL_PUBLIC_KEY"`
	EmailPrivateKey string `mapstructure:"EMAIL_PRIVATE_KEY"`
	EmailAPIBaseURL string `mapstructure:"EMAIL_API_BASE_URL"`

	// Stripe payments.
	StripeKey string `mapstructure:"STRIPE_KEY"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("FIREBASE_PROJECT_ID", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json")
	viper.SetDefault("FIREBASE_STORAGE_BUCKET", "")
	viper.SetDefault("IDLE_TIMEOUT_MINUTES", 30)
	viper.SetDefault("SESSION_TOKEN_HOURS", 12)
	viper.SetDefault("REMINDER_HORIZON_DAYS", 3)
	viper.SetDefault("STORAGE_BACKEND", "firebase")
	viper.SetDefault("EMAIL_API_BASE_URL", "https://api.emailjs.com/api/v1.0/email/send")

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
