package main

import (
	"log"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/app"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
