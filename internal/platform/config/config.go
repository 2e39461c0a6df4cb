package config

import (
	"fmt"
	"os"
	"strconv"
)

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URI      string
	Database string
}

func LoadMongoConfig() MongoConfig {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		host := GetEnv("MONGO_HOST", "127.0.0.1")
		port := GetEnv("MONGO_PORT", "27017")
		user := GetEnv("MONGO_USER", "")
		pass := GetEnv("MONGO_PASSWORD", "")
		if user != "" {
			uri = fmt.Sprintf("mongodb://%s:%s@%s:%s", user, pass, host, port)
		} else {
			uri = fmt.Sprintf("mongodb://%s:%s", host, port)
		}
	}
	return MongoConfig{
		URI:      uri,
		Database: GetEnv("MONGO_DB", "toko_db"),
	}
}

func LoadServerConfig(defaultPort string) ServerConfig {
	port := defaultPort
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}
	return ServerConfig{Port: ":" + port}
}

type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: GetEnvAsInt("RATE_LIMIT_RPS", 50),
		Burst:             GetEnvAsInt("RATE_LIMIT_BURST", 100),
	}
}

// Helper untuk mendapatkan Environment Variable jika ada, atau default
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	strValue := GetEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
