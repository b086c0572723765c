package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	APIBaseURL string `mapstructure:"API_BASE_URL"`
	Env        string `mapstructure:"ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	// TokenFile is where the access/refresh token pair is persisted.
	TokenFile string `mapstructure:"TOKEN_FILE"`

	// OAuthCallbackAddr is the loopback address the Google OAuth
	// callback listener binds to. It must match the redirect URI the
	// backend registered with Google.
	OAuthCallbackAddr string `mapstructure:"OAUTH_CALLBACK_ADDR"`

	// HTTPTimeoutSeconds bounds individual API calls. Zero means no
	// timeout; cancellation then only happens through the context.
	HTTPTimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS"`
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
	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TOKEN_FILE", defaultTokenFile())
	viper.SetDefault("OAUTH_CALLBACK_ADDR", "127.0.0.1:53682")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "cleanhome", "tokens.json")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
