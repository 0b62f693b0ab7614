package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	MongoDB  string

	RedisHost     string
	RedisPassword string

	SessionSecret string
	Port          string

	SMTPHost     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// Load lit .env puis l'environnement et retourne la configuration.
// Les handles ne sont jamais des globales de paquet : tout est injecté
// depuis main.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	cfg := Config{
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       os.Getenv("MONGO_DB"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Port:          os.Getenv("PORT"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:      os.Getenv("SMTP_FROM"),
	}

	if cfg.MongoDB == "" {
		cfg.MongoDB = "user_db"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}
