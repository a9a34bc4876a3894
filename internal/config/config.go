package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress        string `env:"RUN_ADDRESS"`
	DatabaseDSN       string `env:"DATABASE_URI"`
	MigrationsDir     string `env:"MIGRATIONS_DIR"`
	JWTSecret         string `env:"JWT_SECRET"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	AdminAuthKey      string `env:"ADMIN_AUTH_KEY"`
	RedisAddr         string `env:"REDIS_ADDR"`
}

func LoadConfig() (*Config, error) {
	// .env не обязателен, при отсутствии файла просто идем дальше.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTSecret, "s", "", "JWT signing secret")
	flag.StringVar(&flagConfig.AdminPasswordHash, "p", "", "Bcrypt hash of the administrator password")
	flag.StringVar(&flagConfig.AdminAuthKey, "k", "", "Administrator token claim value")
	flag.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address for the catalog cache (optional)")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:        defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:       defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:     defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:         defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		AdminPasswordHash: defaultIfBlank(envConfig.AdminPasswordHash, flagsConfig.AdminPasswordHash),
		AdminAuthKey:      defaultIfBlank(envConfig.AdminAuthKey, flagsConfig.AdminAuthKey),
		RedisAddr:         defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
