package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	SecretKey      string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	UseObjectStorage bool
	StorageEndpoint  string
	StorageRegion    string
	StorageBucket    string
	StorageCDNURL    string
	StorageAccessKey string
	StorageSecretKey string
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	// .env is optional; real deployments set vars directly
	_ = godotenv.Load()

	env := Environment{
		Environment:    os.Getenv("APP_ENV"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SecretKey:      os.Getenv("JWT_SECRET"),
		ServerAddress:  os.Getenv("SERVER_ADDRESS"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		UseObjectStorage: os.Getenv("USE_OBJECT_STORAGE") == "true",
		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageRegion:    os.Getenv("STORAGE_REGION"),
		StorageBucket:    os.Getenv("STORAGE_BUCKET"),
		StorageCDNURL:    os.Getenv("STORAGE_CDN_URL"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
	}

	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}

	// Basic validation
	if env.DatabaseURL == "" || env.SecretKey == "" || env.RedisAddress == "" {
		log.Fatal("Missing required environment variables")
	}

	return env
}
