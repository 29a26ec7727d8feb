package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	Env                     string
	FirebaseCredentialsPath string
	PostgresConnStr         string
	MongoURI                string
	MongoDBName             string
	AdminLogin              string
	AdminPassword           string
}

// Load reads the configuration from the environment. A .env file, when
// present, is loaded first so its values are visible to every lookup below.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		PostgresConnStr:         getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:                getEnv("MONGO_URI", ""),
		MongoDBName:             getEnv("MONGO_DB_NAME", "bloggerplatform"),
		AdminLogin:              getEnv("ADMIN_LOGIN", "admin"),
		AdminPassword:           getEnv("ADMIN_PASSWORD", "qwerty"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
