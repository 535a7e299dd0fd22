package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment         string `mapstructure:"environment"`
	BaseURL             string `mapstructure:"base_url"`
	Port                string `mapstructure:"port"`
	JWTSigningKey       string `mapstructure:"jwt_signing_key"`
	QuizTokenSigningKey string `mapstructure:"quiz_token_signing_key"`
	AllowedCORSDomains  string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

// Load reads the YAML config at path, expanding ${ENV_VAR} placeholders
// from the environment before parsing.
func Load(path string) (*AppConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile -> %w", err)
	}

	viper.SetConfigType("yml")
	if err = viper.ReadConfig(bytes.NewBuffer([]byte(os.ExpandEnv(string(raw))))); err != nil {
		return nil, fmt.Errorf("viper.ReadConfig -> %w", err)
	}

	var conf AppConfig
	if err = viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.SetConfigFile(path)
	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed, restart to apply", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return &conf, nil
}
