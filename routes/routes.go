package routes

import (
	"github.com/gin-gonic/gin"

	"petshop-admin/config"
	"petshop-admin/controllers"
	"petshop-admin/libs"
	"petshop-admin/middleware"
	"petshop-admin/models"
)

func SetupRoutes(router *gin.Engine, db *config.Database, storage *libs.StorageService, mailer *models.EmailService) {
	authCtrl := controllers.NewAuthController(db, mailer)
	productCtrl := controllers.NewProductController(db, storage)
	categoryCtrl := controllers.NewCategoryController(db, storage)
	subcategoryCtrl := controllers.NewSubcategoryController(db, storage)
	orderCtrl := controllers.NewOrderController(db)
	riderCtrl := controllers.NewRiderController(db, storage)
	cmsCtrl := controllers.NewCMSController(db, storage)
	pageCtrl := controllers.NewPageController(db)
	contactCtrl := controllers.NewContactController(db)

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/logout", authCtrl.Logout)
	api.POST("/auth/forgot-password", authCtrl.ForgotPassword)
	api.POST("/auth/verify-reset-code", authCtrl.VerifyResetCode)
	api.POST("/auth/reset-password", authCtrl.ResetPassword)

	api.GET("/products", productCtrl.GetAll)
	api.GET("/products/distinct/tags", productCtrl.DistinctTags)
	api.GET("/products/slug/:slug", productCtrl.GetBySlug)
	api.GET("/products/:id", productCtrl.GetByID)
	api.GET("/categories", categoryCtrl.GetAll)
	api.GET("/categories/:id", categoryCtrl.GetByID)
	api.GET("/subcategories", subcategoryCtrl.GetAll)
	api.GET("/subcategories/:id", subcategoryCtrl.GetByID)
	api.GET("/cms/:theme", cmsCtrl.GetByTheme)
	api.GET("/pages", pageCtrl.GetAll)
	api.GET("/pages/:slug", pageCtrl.GetBySlug)
	api.GET("/contact-pages", contactCtrl.GetAll)
	api.GET("/contact-pages/:slug", contactCtrl.GetBySlug)

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/me", authCtrl.Me)

		auth.POST("/products", middleware.ValidateUploads(middleware.ProductUploads), productCtrl.Create)
		auth.PUT("/products/:id", middleware.ValidateUploads(middleware.ProductUploads), productCtrl.Update)
		auth.PATCH("/products/bulk-status", productCtrl.BulkStatus)
		auth.DELETE("/products/:id", productCtrl.Delete)

		auth.POST("/categories", middleware.ValidateUploads(middleware.CategoryUploads), categoryCtrl.Create)
		auth.PUT("/categories/:id", middleware.ValidateUploads(middleware.CategoryUploads), categoryCtrl.Update)
		auth.DELETE("/categories/:id", categoryCtrl.Delete)

		auth.POST("/subcategories", middleware.ValidateUploads(middleware.CategoryUploads), subcategoryCtrl.Create)
		auth.PUT("/subcategories/:id", middleware.ValidateUploads(middleware.CategoryUploads), subcategoryCtrl.Update)
		auth.DELETE("/subcategories/:id", subcategoryCtrl.Delete)

		auth.GET("/orders", orderCtrl.GetAll)
		auth.GET("/orders/:id", orderCtrl.GetByID)
		auth.POST("/orders", orderCtrl.Create)
		auth.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		auth.DELETE("/orders/:id", orderCtrl.Delete)

		auth.GET("/riders", riderCtrl.GetAll)
		auth.GET("/riders/:id", riderCtrl.GetByID)
		auth.POST("/riders", middleware.ValidateUploads(middleware.RiderUploads), riderCtrl.Create)
		auth.PUT("/riders/:id", middleware.ValidateUploads(middleware.RiderUploads), riderCtrl.Update)
		auth.PATCH("/riders/:id/availability", riderCtrl.SetAvailability)
		auth.POST("/riders/:id/orders", riderCtrl.AssignOrder)
		auth.DELETE("/riders/:id", riderCtrl.Delete)

		auth.POST("/cms/:theme", middleware.ValidateUploads(middleware.CMSUploads), cmsCtrl.Save)

		auth.POST("/pages", pageCtrl.Create)
		auth.PUT("/pages/:slug", pageCtrl.Update)
		auth.DELETE("/pages/:slug", pageCtrl.Delete)

		auth.POST("/contact-pages", contactCtrl.Create)
		auth.PUT("/contact-pages/:slug", contactCtrl.Update)
		auth.DELETE("/contact-pages/:slug", contactCtrl.Delete)
	}
}
