package main

import (
	"log"

	"github.com/joho/godotenv"

	"taxidash/internal"
	"taxidash/internal/config"
	"taxidash/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := internal.NewDefaultLogger()

	app, err := ui.NewApp(cfg, logger)
	if err != nil {
		log.Fatal("Failed to create dashboard app:", err)
	}

	log.Printf("Starting taxi dashboard on http://localhost:%s", cfg.Server.Port)
	log.Fatal(app.Serve(cfg.Server.Port))
}
