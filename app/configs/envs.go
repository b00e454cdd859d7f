package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	Port          string
	RedisURL      string
	SyncNamespace string
	LocalStoreDir string
	RemoteTimeout time.Duration
	AppAuthKey    string
	AppEncKey     string
	EmailHost     string
	EmailPort     string
	EmailUsername string
	EmailPassword string
	EmailFrom     string
	AppEnv        string
}

func (e ENV) IsProduction() bool {
	return e.AppEnv == "production"
}

// MailConfigured reports whether order status e-mails can be sent.
func (e ENV) MailConfigured() bool {
	return e.EmailHost != "" && e.EmailPort != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	return ENV{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getEnv("DB_PORT", "3306"),
		Port:          getEnv("APP_PORT", "8080"),
		RedisURL:      os.Getenv("REDIS_URL"),
		SyncNamespace: getEnv("SYNC_NAMESPACE", "figurine"),
		LocalStoreDir: getEnv("LOCAL_STORE_DIR", "./data"),
		RemoteTimeout: getDuration("REMOTE_TIMEOUT", 10*time.Second),
		AppAuthKey:    os.Getenv("APP_AUTH_KEY"),
		AppEncKey:     os.Getenv("APP_ENC_KEY"),
		EmailHost:     os.Getenv("EMAIL_HOST"),
		EmailPort:     os.Getenv("EMAIL_PORT"),
		EmailUsername: os.Getenv("EMAIL_USERNAME"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:     os.Getenv("EMAIL_USERNAME"),
		AppEnv:        getEnv("APP_ENV", "development"),
	}
}

var LoadENV = LoadEnv()
