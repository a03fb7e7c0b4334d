package main

import (
	"log"

	"github.com/aussiebroadwan/roster/internal/roster/app"

	_ "github.com/joho/godotenv/autoload" // .env in the working directory, if any
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
