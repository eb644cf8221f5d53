package main

import (
	"log"

	"sitestudio-backend/internal/bootstrap"
	"sitestudio-backend/internal/shared/config"
	"sitestudio-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting site studio API on %s (env=%s)", addr, cfg.Env)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
