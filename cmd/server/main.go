package main

import (
	"os"

	"miniforum/internal/db"
	"miniforum/internal/logger"
	"miniforum/internal/middleware"
	"miniforum/internal/router"
	"miniforum/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Warn.Printf("no .env file found, reading env vars from system")
	}

	gdb, err := db.Init()
	if err != nil {
		logger.Error.Fatalf("failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	r.Use(cors.New(config))

	router.RegisterRoutes(r, store.New(gdb))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info.Printf("miniforum server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logger.Error.Fatalf("server stopped: %v", err)
	}
}
