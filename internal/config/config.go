package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	AppEnv         string
	MongoURI       string
	MongoDBName    string
	MasterNumber   string
	MasterPassword string
	CloudinaryURL  string
	CORSOrigin     string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:        getEnv("PORT", "5000"),
		AppEnv:         os.Getenv("APP_ENV"),
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDBName:    getEnv("MONGODB_NAME", "thokmarket"),
		MasterNumber:   os.Getenv("MASTER_NUMBER"),
		MasterPassword: os.Getenv("MASTER_PASSWORD"),
		CloudinaryURL:  os.Getenv("CLOUDINARY_URL"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "https://thokmarket-20.netlify.app"),
	}

	if cfg.MongoURI == "" || os.Getenv("JWT_SECRET") == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
