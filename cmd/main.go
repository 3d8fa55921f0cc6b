package main

import (
	"log"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/app"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/app/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	application.Run()
}
