package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config snapshots the environment at startup. The signing key is threaded
// into the components that need it rather than read from the environment at
// call sites.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	S3AccessKey string
	S3SecretKey string
	S3URL       string
	S3Region    string

	SigningKey string
	ListenAddr string
}

// Load reads .env when present, then the environment. Missing required values
// are an error; the caller decides how fatal that is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      os.Getenv("DB_PORT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3URL:       os.Getenv("S3_URL"),
		S3Region:    os.Getenv("S3_REGION"),
		SigningKey:  os.Getenv("SIGNING_KEY"),
		ListenAddr:  os.Getenv("LISTEN_ADDR"),
	}

	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8000"
	}

	required := map[string]string{
		"DB_HOST":              cfg.DBHost,
		"DB_USER":              cfg.DBUser,
		"DB_PASSWORD":          cfg.DBPassword,
		"DB_NAME":              cfg.DBName,
		"DB_PORT":              cfg.DBPort,
		"S3_ACCESS_KEY_ID":     cfg.S3AccessKey,
		"S3_SECRET_ACCESS_KEY": cfg.S3SecretKey,
		"S3_URL":               cfg.S3URL,
		"SIGNING_KEY":          cfg.SigningKey,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("missing %s environment variable", name)
		}
	}

	return cfg, nil
}

// DSN assembles the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}
