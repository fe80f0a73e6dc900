package config

import (
	"fmt"
	"net/url"
	"os"
)

// Config holds everything read from the process environment. Load is the only
// place env vars are touched; the rest of the app receives this struct.
type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	TokenSecret string

	// Optional — when ResendAPIKey is empty the server falls back to a
	// log-only mailer.
	ResendAPIKey string
	FromEmail    string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "5000"),
		MongoURI:     os.Getenv("MONGODB_URI"),
		DBName:       getEnv("DB_NAME", "taskDB"),
		TokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		FromEmail:    os.Getenv("FROM_EMAIL"),
	}

	if cfg.MongoURI == "" {
		uri, err := composeURI()
		if err != nil {
			return nil, err
		}
		cfg.MongoURI = uri
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}

	return cfg, nil
}

// composeURI builds the hosted-cluster connection string from individual
// credentials when MONGODB_URI is not set directly.
func composeURI() (string, error) {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")

	if user == "" || pass == "" || host == "" {
		return "", fmt.Errorf("MONGODB_URI or DB_USER, DB_PASS and DB_HOST are required")
	}

	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(pass), host), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
