package main

import (
	"log"

	"github.com/guru0072/solo-leveling-ai/config"
	"github.com/guru0072/solo-leveling-ai/routes"
)

func main() {
	cfg := config.Load()
	config.InitDB(cfg.DBPath)

	r := routes.SetupRouter(cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
