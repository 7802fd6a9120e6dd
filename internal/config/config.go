package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	JWTSecret       string
	SessionTTL      string
	AllowOrigins    []string
	LogstashTCPAddr string

	CountryPageSize int
	CityPageSize    int
	TourPageSize    int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	return Config{
		Port:            getenv("PORT", "8080"),
		DatabaseURL:     must("DATABASE_URL"),
		JWTSecret:       must("JWT_SECRET"),
		SessionTTL:      getenv("SESSION_TTL", "24h"),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),

		CountryPageSize: getenvInt("COUNTRY_PAGE_SIZE", 10),
		CityPageSize:    getenvInt("CITY_PAGE_SIZE", 12),
		TourPageSize:    getenvInt("TOUR_PAGE_SIZE", 10),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v, err := strconv.Atoi(getenv(k, "")); err == nil && v > 0 {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
