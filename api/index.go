package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"petshop-admin/config"
	"petshop-admin/libs"
	"petshop-admin/logger"
	"petshop-admin/middleware"
	"petshop-admin/models"
	"petshop-admin/routes"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		logger.Init(config.AppConfig.AppEnv)

		db := config.NewDatabase()
		if err := db.Connect(context.Background(), config.AppConfig.MongoURI, config.AppConfig.MongoDatabase); err != nil {
			initErr = err
			return
		}

		storage, err := libs.NewStorageService(config.AppConfig)
		if err != nil {
			initErr = err
			return
		}

		mailer, err := models.NewEmailService(config.AppConfig)
		if err != nil {
			mailer = nil
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())
		router.Use(logger.RequestID(), logger.RequestLogger())

		routes.SetupRoutes(router, db, storage, mailer)
	})
}

// Handler is the serverless entrypoint. The app is initialized once per
// instance and reused across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
