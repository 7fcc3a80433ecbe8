package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port         string
	DSN          string
	JWTSecret    string
	TokenTTLDays int
	CORSOrigins  []string
	Env          string
}

func Load() *Config {
	_ = godotenv.Load()
	ttl, err := strconv.Atoi(getEnv("TOKEN_TTL_DAYS", "30"))
	if err != nil {
		ttl = 30
	}

	c := &Config{
		Port:         getEnv("PORT", "8080"),
		DSN:          mustEnv("DB_DSN"),
		JWTSecret:    mustEnv("JWT_SECRET"),
		TokenTTLDays: ttl,
		CORSOrigins:  strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		Env:          getEnv("ENV", "dev"),
	}
	log.Infof("config loaded: env=%s port=%s", c.Env, c.Port)
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env: %s", k)
	}
	return v
}
