package main

import (
	"log"

	"symposium-api/config"
	"symposium-api/database"
	_ "symposium-api/docs"
	"symposium-api/middleware"
	v1 "symposium-api/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Symposium API
// @version 1.0
// @description Event registration backend for the symposium: accounts, events, carts, payment-proof registrations, verification and round eligibility.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}
	config.Load()

	database.InitDB()
	database.InitRedis()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1.RegisterRoutes(r)
	middleware.UpdateSystemMetrics()

	log.Println("Server listening on port " + config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
