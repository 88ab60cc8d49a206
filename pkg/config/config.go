package config

import (
	"os"
)

// Database configuration struct.
type DatabaseConfiguration struct {
	URL            string
	Database       string
	MigrationsPath string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Server configuration struct.
type ServerConfiguration struct {
	Port string
}

var (
	Database DatabaseConfiguration
	Redis    RedisConfiguration
	Server   ServerConfiguration
)

// Load the variables.
func LoadEnv() {
	// Load the database configuration.
	Database.URL = os.Getenv("DATABASE_URL")
	Database.Database = os.Getenv("DATABASE_NAME")
	Database.MigrationsPath = os.Getenv("MIGRATIONS_PATH")
	if Database.MigrationsPath == "" {
		Database.MigrationsPath = "migrations"
	}

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the server configuration.
	Server.Port = os.Getenv("API_PORT")
	if Server.Port == "" {
		Server.Port = "8080"
	}
}
