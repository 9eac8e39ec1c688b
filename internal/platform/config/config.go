package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	RateLimit    string // ulule/limiter formatted rate, e.g. "100-M"

	// Reminder scheduler
	ReminderInterval        time.Duration
	ReminderDaysBefore      int
	ReminderIncludeOverdue  bool
	ReminderDispatchTimeout time.Duration

	// Notification provider
	NotifyProviderBaseURL string
	NotifyProviderToken   string
	SMTPAddr              string
	SMTPFrom              string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("REMINDER_INTERVAL", "24h")
	viper.SetDefault("REMINDER_DAYS_BEFORE", 3)
	viper.SetDefault("REMINDER_INCLUDE_OVERDUE", true)
	viper.SetDefault("REMINDER_DISPATCH_TIMEOUT", "15s")
	viper.SetDefault("NOTIFY_PROVIDER_BASE_URL", "")
	viper.SetDefault("NOTIFY_PROVIDER_TOKEN", "")
	viper.SetDefault("SMTP_ADDR", "")
	viper.SetDefault("SMTP_FROM", "no-reply@homevia.app")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	reminderIntervalStr := viper.GetString("REMINDER_INTERVAL")
	reminderInterval, err := time.ParseDuration(reminderIntervalStr)
	if err != nil {
		reminderInterval = 24 * time.Hour
		log.Printf("Warning: Invalid value for REMINDER_INTERVAL ('%s'). Defaulting to %s.\n", reminderIntervalStr, reminderInterval)
	}
	cfg.ReminderInterval = reminderInterval

	cfg.ReminderDaysBefore = viper.GetInt("REMINDER_DAYS_BEFORE")
	if cfg.ReminderDaysBefore < 0 {
		cfg.ReminderDaysBefore = 3
		log.Printf("Warning: REMINDER_DAYS_BEFORE must not be negative. Defaulting to %d.\n", cfg.ReminderDaysBefore)
	}
	cfg.ReminderIncludeOverdue = viper.GetBool("REMINDER_INCLUDE_OVERDUE")

	dispatchTimeoutStr := viper.GetString("REMINDER_DISPATCH_TIMEOUT")
	dispatchTimeout, err := time.ParseDuration(dispatchTimeoutStr)
	if err != nil {
		dispatchTimeout = 15 * time.Second
		log.Printf("Warning: Invalid value for REMINDER_DISPATCH_TIMEOUT ('%s'). Defaulting to %s.\n", dispatchTimeoutStr, dispatchTimeout)
	}
	cfg.ReminderDispatchTimeout = dispatchTimeout

	cfg.NotifyProviderBaseURL = viper.GetString("NOTIFY_PROVIDER_BASE_URL")
	cfg.NotifyProviderToken = viper.GetString("NOTIFY_PROVIDER_TOKEN")
	if cfg.NotifyProviderBaseURL == "" {
		log.Println("Warning: NOTIFY_PROVIDER_BASE_URL not set. SMS/WhatsApp reminders will fail to dispatch.")
	}
	cfg.SMTPAddr = viper.GetString("SMTP_ADDR")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")
	if cfg.SMTPAddr == "" {
		log.Println("Warning: SMTP_ADDR not set. Email reminders will fail to dispatch.")
	}

	return cfg, nil
}
