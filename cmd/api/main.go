package main

import (
	log "github.com/sirupsen/logrus"

	"roam/internal/config"
	"roam/internal/database"
	"roam/internal/server"
	"roam/internal/store"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		log.Fatalf("DB connect error: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("migrations error: %v", err)
	}

	st := store.NewMySQLStore(db)
	srv := server.NewServer(":"+cfg.Port, st, cfg.JWTSecret, cfg.TokenTTLDays, cfg.CORSOrigins)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
