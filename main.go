package main

import (
	"fmt"
	"log"

	"civicboard/internal/config"
	"civicboard/internal/database"
	"civicboard/internal/forum"
	"civicboard/internal/middleware"
	"civicboard/internal/router"
	"civicboard/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg)

	// Initialize database and engine
	db := database.Initialize(cfg)
	engine := forum.New(store.New(db))

	// Setup router
	r := router.Setup(db, engine, cfg)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
