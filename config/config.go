package config

import (
	"errors"
	"os"
)

// Config holds everything read from the environment at startup.
// It is built once in main and passed to the components that need it.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Env        string
	Port       string
	SecretKey  string
}

func Load() (*Config, error) {
	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Env:        os.Getenv("ENV"),
		Port:       os.Getenv("PORT"),
		SecretKey:  os.Getenv("SECRET_KEY"),
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("SECRET_KEY is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}

func (c *Config) SSLMode() string {
	if c.Env == "prod" {
		return "require"
	}
	return "disable"
}
