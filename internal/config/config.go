package config

import (
	"os"
	"strconv"

	"github.com/mtakagi/notes-api/internal/constants"
)

type Config struct {
	ServerPort      string
	GinMode         string
	DBDriver        string
	DBPath          string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	JWTSecret       string
	TokenTTLMinutes int
}

func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBPath:          getEnv("DB_PATH", "notes.db"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          getEnv("DB_USER", "notesuser"),
		DBPassword:      getEnv("DB_PASSWORD", "notespassword"),
		DBName:          getEnv("DB_NAME", "notes"),
		JWTSecret:       getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTLMinutes: getEnvInt("TOKEN_TTL_MINUTES", constants.DefaultTokenTTLMinutes),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
