package internal

import (
	"log"
	"os"
	"strconv"
)

// Defaults for CLI flags, read from the environment (and .env, loaded by main)
type Config struct {
	OutputDir string
	Filter    string
	Facing    string
	Format    string
	Quality   int
}

func LoadConfig() Config {
	return Config{
		OutputDir: getEnv("CAMFILTER_OUTPUT_DIR", "./captures"),
		Filter:    getEnv("CAMFILTER_FILTER", "normal"),
		Facing:    getEnv("CAMFILTER_FACING", "user"),
		Format:    getEnv("CAMFILTER_FORMAT", "jpeg"),
		Quality:   getEnvInt("CAMFILTER_QUALITY", 92),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
