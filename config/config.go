package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	JWT        JWTConfig
	Telegram   TelegramConfig
	Cloudinary CloudinaryConfig
	Location   LocationConfig
	Logging    LoggingConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StorageConfig selects the key-value backend. When RedisAddr is set and
// reachable the cloud-synced backend is used, otherwise the local SQLite file.
type StorageConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LocalPath     string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// TelegramConfig holds the bot token used to verify Login Widget payloads.
// IdentityTTL is how long a stored identity stays valid after auth_date.
type TelegramConfig struct {
	BotToken    string
	IdentityTTL time.Duration
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type LocationConfig struct {
	RefreshInterval time.Duration
	MinAge          int
}

type LoggingConfig struct {
	Level string
}

// Load reads configuration from a .env file and the environment.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // .env is optional

	viper.SetDefault("SERVER_PORT", "8099")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("STORAGE_LOCAL_PATH", "state.db")
	viper.SetDefault("JWT_EXPIRY_HOURS", 168)
	viper.SetDefault("LOCATION_REFRESH_MINUTES", 5)
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			RedisAddr:     viper.GetString("REDIS_ADDR"),
			RedisPassword: viper.GetString("REDIS_PASSWORD"),
			RedisDB:       viper.GetInt("REDIS_DB"),
			LocalPath:     viper.GetString("STORAGE_LOCAL_PATH"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			Issuer: "dating-app",
		},
		Telegram: TelegramConfig{
			BotToken:    viper.GetString("TELEGRAM_BOT_TOKEN"),
			IdentityTTL: 7776000 * time.Second, // 90 days
		},
		Cloudinary: CloudinaryConfig{
			CloudName: viper.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    viper.GetString("CLOUDINARY_API_KEY"),
			APISecret: viper.GetString("CLOUDINARY_API_SECRET"),
		},
		Location: LocationConfig{
			RefreshInterval: time.Duration(viper.GetInt("LOCATION_REFRESH_MINUTES")) * time.Minute,
			MinAge:          18,
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks critical configuration values.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram bot token is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.Location.MinAge < 18 {
		c.Location.MinAge = 18
	}
	return nil
}
