package main

import (
	"errors"
	"flag"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/travia-app/travia-backend/internal/config"
)

func main() {
	command := flag.String("command", "up", "Migration command: up, down, or version")
	source := flag.String("source", "file://migrations", "Migration source URL")
	flag.Parse()

	cfg := config.Load()

	m, err := migrate.New(*source, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to create migration instance: %v", err)
	}
	defer m.Close()

	switch *command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migration up failed: %v", err)
		}
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migration down failed: %v", err)
		}
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("failed to read version: %v", err)
		}
		log.Printf("version=%d dirty=%v", v, dirty)
	default:
		log.Fatalf("unknown command %q", *command)
	}

	log.Println("migration command completed")
}
