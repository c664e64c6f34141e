package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// Config is built once at startup and passed down explicitly; nothing reads
// viper or the environment after Load returns.
type Config struct {
	Port     string
	DBPath   string
	LogLevel string

	JWTSecret string

	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string
}

const (
	defaultPort    = "8080"
	defaultDBPath  = "quizforge.db"
	defaultLevel   = "info"
	defaultModel   = "gemini-2.5-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Load reads configs/config.yml plus the environment. Secrets come only from
// the environment; the yml carries the non-sensitive knobs.
func Load() (Config, error) {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine; defaults and env cover everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	viper.SetDefault("port", defaultPort)
	viper.SetDefault("db.path", defaultDBPath)
	viper.SetDefault("log.level", defaultLevel)
	viper.SetDefault("ai.model", defaultModel)
	viper.SetDefault("ai.base_url", defaultBaseURL)

	cfg := Config{
		Port:          viper.GetString("port"),
		DBPath:        viper.GetString("db.path"),
		LogLevel:      viper.GetString("log.level"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		GeminiKey:     os.Getenv("GEMINI_KEY"),
		GeminiModel:   viper.GetString("ai.model"),
		GeminiBaseURL: viper.GetString("ai.base_url"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	return cfg, nil
}
