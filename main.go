package main

import (
	"log"

	"solestyle/config"
	_ "solestyle/docs"
	"solestyle/middleware"
	"solestyle/routes"

	"github.com/gin-gonic/gin"
)

// @title SoleStyle API
// @version 1.0
// @description E-commerce backend: accounts, products and per-user carts.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.ConnectMongo()
	defer config.CloseMongo()

	config.InitRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
