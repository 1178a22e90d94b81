package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// HTTP server
	ServerAddr string
	HTMLDir    string
	StaticDir  string

	// Persistence
	DSN string

	// Sessions & flash notices
	SessionSecret string
	SessionTTL    time.Duration
}

// Load reads configuration from environment variables with sane
// defaults, plus an optional config.yaml in the working directory.
func Load() *Config {
	viper.SetDefault("SERVER_ADDR", ":4000")
	viper.SetDefault("HTML_DIR", "./ui/html")
	viper.SetDefault("STATIC_DIR", "./ui/static")
	viper.SetDefault("DSN", "./blog.db")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_TTL", "24h")

	viper.AutomaticEnv()

	// Optional config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // ignore error if no file

	return &Config{
		ServerAddr:    viper.GetString("SERVER_ADDR"),
		HTMLDir:       viper.GetString("HTML_DIR"),
		StaticDir:     viper.GetString("STATIC_DIR"),
		DSN:           viper.GetString("DSN"),
		SessionSecret: viper.GetString("SESSION_SECRET"),
		SessionTTL:    parseDuration(viper.GetString("SESSION_TTL"), 24*time.Hour),
	}
}

func parseDuration(s string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return def
}
