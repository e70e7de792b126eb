package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// JWTConfig holds the token signing settings shared by the issuer and the verifier.
type JWTConfig struct {
	SecretKey string        `mapstructure:"secret_key"`
	Expiry    time.Duration `mapstructure:"expiry"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Config struct {
	App struct {
		Env string `mapstructure:"env"`
	} `mapstructure:"app"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Auth struct {
		BcryptCost int `mapstructure:"bcrypt_cost"`
	} `mapstructure:"auth"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

// IsProduction reports whether operator-only diagnostics must be hidden from clients.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

var defaults = map[string]any{
	"app.env":           "development",
	"server.port":       "8080",
	"log.level":         "info",
	"log.format":        "json",
	"auth.bcrypt_cost":  12,
	"database.host":     "localhost",
	"database.port":     "5432",
	"database.user":     "postgres",
	"database.password": "",
	"database.name":     "studio",
	"database.sslmode":  "disable",
	"redis.host":        "localhost",
	"redis.port":        "6379",
	"redis.password":    "",
	"redis.db":          0,
	"jwt.secret_key":    "",
	"jwt.expiry":        "1h",
}

// LoadConfig reads config.yml from path (optional), a .env file (optional) and the
// process environment. JWT_SECRET_KEY overrides jwt.secret_key, and so on.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.JWT.Expiry < 0 {
		return nil, fmt.Errorf("jwt.expiry must not be negative, got %s", cfg.JWT.Expiry)
	}

	return &cfg, nil
}
