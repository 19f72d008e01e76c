package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DatabaseConfig struct {
	URL  string // connection string do MongoDB
	Name string // nome do database
}

type JWTConfig struct {
	Secret string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações do ambiente (e do arquivo .env, se existir).
// A ausência do segredo JWT ou da connection string é erro fatal de startup.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env é opcional; variáveis de ambiente têm prioridade
	_ = viper.ReadInConfig()

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
			Host: viper.GetString("HOST"),
		},
		Database: DatabaseConfig{
			URL:  viper.GetString("DATABASE_URL"),
			Name: viper.GetString("DB_NAME"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	if config.Server.Port == "" {
		config.Server.Port = "3000"
	}
	if config.Database.Name == "" {
		config.Database.Name = "gamehub"
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}
