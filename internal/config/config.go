package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type Mongo struct {
	PrimaryURI string
	LocalURI   string
	Database   string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

type CORS struct {
	AllowedOrigins []string
}

type Config struct {
	HTTP       HTTPServer
	Mongo      Mongo
	Redis      RedisCache
	SMTP       SMTP
	CORS       CORS
	Production bool
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:       *newHTTP(),
		Mongo:      *newMongo(),
		Redis:      *newRedis(),
		SMTP:       *newSMTP(),
		CORS:       *newCORS(),
		Production: os.Getenv("APP_ENV") == "production",
	}

	checkRequired(cfg)
	return cfg
}

// checkRequired mirrors the startup env check: loudly report what is
// present, die on what cannot be defaulted.
func checkRequired(cfg *Config) {
	report := func(name, value string) {
		state := "MISSING"
		if value != "" {
			state = "loaded"
		}
		log.Printf("%s %s : %s", logtag, name, state)
	}

	report("ATLAS_URI", cfg.Mongo.PrimaryURI)
	report("LOCAL_URI", cfg.Mongo.LocalURI)
	report("EMAIL_USER", cfg.SMTP.Username)
	report("EMAIL_PASS", cfg.SMTP.Password)

	if cfg.Mongo.PrimaryURI == "" && cfg.Mongo.LocalURI == "" {
		log.Fatalf("%s no MongoDB URI configured", logtag)
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newMongo() *Mongo {
	return &Mongo{
		PrimaryURI: os.Getenv("ATLAS_URI"),
		LocalURI:   os.Getenv("LOCAL_URI"),
		Database:   getenv("DB_NAME", "cinetalk"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newSMTP() *SMTP {
	username := os.Getenv("EMAIL_USER")
	return &SMTP{
		Host:     getenv("EMAIL_HOST", "smtp.gmail.com"),
		Port:     getenv("EMAIL_PORT", "465"),
		Username: username,
		Password: os.Getenv("EMAIL_PASS"),
		To:       getenv("EMAIL_TO", username),
	}
}

func newCORS() *CORS {
	origins := getenv("CORS_ORIGINS", "http://localhost:5173")
	return &CORS{
		AllowedOrigins: strings.Split(origins, ","),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}
