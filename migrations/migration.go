package main

import (
	"log"

	"gin-swiftmart/config"
	"gin-swiftmart/infra"
)

func main() {
	infra.Initialize()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := infra.SetupDB(cfg)
	if err := infra.Migrate(db); err != nil {
		panic("Failed to migrate database")
	}
}
