package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"petshop-admin/config"
	"petshop-admin/libs"
	"petshop-admin/logger"
	"petshop-admin/middleware"
	"petshop-admin/models"
	"petshop-admin/routes"
)

func main() {

	config.LoadConfig()

	logger.Init(config.AppConfig.AppEnv)
	defer logger.Sync()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx := context.Background()

	db := config.NewDatabase()
	if err := db.Connect(ctx, config.AppConfig.MongoURI, config.AppConfig.MongoDatabase); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close(ctx)

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	storage, err := libs.NewStorageService(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	mailer, err := models.NewEmailService(config.AppConfig)
	if err != nil {
		log.Printf("Email service disabled: %v", err)
		mailer = nil
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(logger.RequestID(), logger.RequestLogger())

	routes.SetupRoutes(router, db, storage, mailer)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
