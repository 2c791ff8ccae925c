package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Upload UploadConfig `mapstructure:"upload"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	AdminEmail    string        `mapstructure:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password"`
}

type UploadConfig struct {
	Dir      string `mapstructure:"dir"`
	MaxBytes int64  `mapstructure:"max_bytes"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.thevarches/")
	v.AddConfigPath("/etc/thevarches/")

	// Enable environment variable override with THEVARCHES_ prefix
	v.SetEnvPrefix("THEVARCHES")
	v.AutomaticEnv()

	setDefaults(v)

	// A missing config file is fine, defaults plus env cover everything
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":5000")
	// parseTime is required so created_at columns scan into time.Time
	v.SetDefault("db.dsn", "root:@tcp(localhost:3306)/thevarches?parseTime=true")
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("auth.token_ttl", 7*24*time.Hour)
	v.SetDefault("upload.dir", "./public/uploads")
	v.SetDefault("upload.max_bytes", 10*1024*1024)
	v.SetDefault("cors.origins", []string{"*"})
}
