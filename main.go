// main.go
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/arogyaventures/opd-server/config"
	"github.com/arogyaventures/opd-server/endpoint"
	"github.com/arogyaventures/opd-server/middleware"
	"github.com/arogyaventures/opd-server/model"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.AutoMigrate(model.AllModels...); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	// Redis is optional; the rate limiter degrades to a no-op without it.
	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"POST", "GET", "OPTIONS", "PATCH"},
		AllowHeaders:    []string{"X-Requested-With", "Content-Type", "Authorization"},
		MaxAge:          24 * time.Hour,
	}))
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.RequestLogger())

	endpoint.RegisterRoutes(router)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
