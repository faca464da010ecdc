package utils

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Mollie   MollieConfig
	Email    EmailConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type MollieConfig struct {
	APIKey      string
	BaseURL     string
	RedirectURL string
	Currency    string
}

type EmailConfig struct {
	APIKey string
	From   string
	To     string
}

type BookingConfig struct {
	CancellationWindowHours int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MOLLIE_BASE_URL", "https://api.mollie.com/v2")
	viper.SetDefault("MOLLIE_CURRENCY", "EUR")
	viper.SetDefault("EMAIL_FROM", "onboarding@resend.dev")
	viper.SetDefault("CANCELLATION_WINDOW_HOURS", 24)

	// .env is optional, plain environment variables still apply
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Mollie: MollieConfig{
			APIKey:      viper.GetString("MOLLIE_API_KEY"),
			BaseURL:     viper.GetString("MOLLIE_BASE_URL"),
			RedirectURL: viper.GetString("MOLLIE_REDIRECT_URL"),
			Currency:    viper.GetString("MOLLIE_CURRENCY"),
		},
		Email: EmailConfig{
			APIKey: viper.GetString("RESEND_API_KEY"),
			From:   viper.GetString("EMAIL_FROM"),
			To:     viper.GetString("EMAIL_TO"),
		},
		Booking: BookingConfig{
			CancellationWindowHours: viper.GetInt("CANCELLATION_WINDOW_HOURS"),
		},
	}

	return config, nil
}

// Validate logs missing credentials. The process keeps running; handlers
// that depend on a missing credential answer 500 instead of crashing.
func (c *Config) Validate(log *zap.Logger) {
	if !c.DatabaseConfigured() {
		log.Error("Missing database config (DB_HOST / DB_NAME / DB_USER), store operations will fail")
	}
	if c.Mollie.APIKey == "" {
		log.Error("MOLLIE_API_KEY is missing, payment operations will fail")
	}
	if c.Email.APIKey == "" {
		log.Warn("RESEND_API_KEY is missing, booking confirmation emails are disabled")
	}
}

func (c *Config) DatabaseConfigured() bool {
	return c.Database.Host != "" && c.Database.Name != "" && c.Database.User != ""
}
