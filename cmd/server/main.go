package main

import (
	"fmt"
	"log"

	"dems-portal/internal/config"
	"dems-portal/internal/database"
	"dems-portal/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDriver, cfg.DBDSN)
	database.Seed(cfg.AdminUsername, cfg.AdminPIN)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
