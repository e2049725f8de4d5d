package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string
	MongoDB        string
	Port           string
	CloudName      string
	CloudAPIKey    string
	CloudSecretKey string
}

func LoadConfig() (*Config, error) {
	// Solo cargar .env en desarrollo local
	// En producción esto se ignora automáticamente
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load()
		if err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	cfg := &Config{
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDB:        getEnv("MONGO_DB", "devstyle"),
		Port:           getEnv("PORT", "8080"),
		CloudName:      getEnv("CLOUD_NAME", ""),
		CloudAPIKey:    getEnv("CLOUD_API_KEY", ""),
		CloudSecretKey: getEnv("CLOUD_SECRET_KEY", ""),
	}

	// Las credenciales del host de medios son obligatorias: el uploader
	// las recibe inyectadas, nunca las lee del entorno por su cuenta
	for _, required := range []struct{ key, value string }{
		{"MONGO_URI", cfg.MongoURI},
		{"CLOUD_NAME", cfg.CloudName},
		{"CLOUD_API_KEY", cfg.CloudAPIKey},
		{"CLOUD_SECRET_KEY", cfg.CloudSecretKey},
	} {
		if required.value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", required.key)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
