package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`

	// FirebaseWebAPIKey authenticates calls to the Identity Toolkit REST API
	// (password sign-in, verification mail) which the Admin SDK does not cover.
	FirebaseWebAPIKey string `mapstructure:"FIREBASE_WEB_API_KEY"`

	OpenRouteAPIKey   string `mapstructure:"OPENROUTE_API_KEY"`
	OpenRouteBaseURL  string `mapstructure:"OPENROUTE_BASE_URL"`
	DirectionsAPIKey  string `mapstructure:"DIRECTIONS_API_KEY"`
	DirectionsBaseURL string `mapstructure:"DIRECTIONS_BASE_URL"`

	ClientURL          string `mapstructure:"CLIENT_URL"`
	HolidayRefreshCron string `mapstructure:"HOLIDAY_REFRESH_CRON"`
}

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("OPENROUTE_BASE_URL", "https://api.openrouteservice.org")
	viper.SetDefault("DIRECTIONS_BASE_URL", "https://maps.googleapis.com/maps/api")
	viper.SetDefault("HOLIDAY_REFRESH_CRON", "0 3 * * *")

	viper.BindEnv("PORT")
	viper.BindEnv("GIN_MODE")
	viper.BindEnv("FIREBASE_PROJECT_ID")
	viper.BindEnv("GOOGLE_APPLICATION_CREDENTIALS")
	viper.BindEnv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64")
	viper.BindEnv("FIREBASE_WEB_API_KEY")
	viper.BindEnv("OPENROUTE_API_KEY")
	viper.BindEnv("OPENROUTE_BASE_URL")
	viper.BindEnv("DIRECTIONS_API_KEY")
	viper.BindEnv("DIRECTIONS_BASE_URL")
	viper.BindEnv("CLIENT_URL")
	viper.BindEnv("HOLIDAY_REFRESH_CRON")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	if cfg.FirebaseProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID is required")
	}
	if cfg.GoogleApplicationCredentials == "" && cfg.FirebaseServiceAccountJSONBase64 == "" {
		return nil, errors.New("either GOOGLE_APPLICATION_CREDENTIALS or FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 is required")
	}
	if cfg.FirebaseWebAPIKey == "" {
		return nil, errors.New("FIREBASE_WEB_API_KEY is required")
	}
	if cfg.OpenRouteAPIKey == "" {
		return nil, errors.New("OPENROUTE_API_KEY is required")
	}
	if cfg.DirectionsAPIKey == "" {
		return nil, errors.New("DIRECTIONS_API_KEY is required")
	}

	return &cfg, nil
}
