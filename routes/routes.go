package routes

import (
	"solestyle/config"
	"solestyle/controllers"
	"solestyle/middleware"
	"solestyle/repositories"
	"solestyle/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository(config.DB)
	productRepo := repositories.NewProductRepository(config.DB)
	cartRepo := repositories.NewCartRepository(config.MongoDB)

	authSvc := services.NewAuthService(userRepo, config.AppConfig.JWTSecret, config.AppConfig.JWTExpiry)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(cartRepo)

	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	cartCtrl := controllers.NewCartController(cartSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)

		api.POST("/products", productCtrl.CreateProduct)
		api.GET("/products", productCtrl.GetAllProducts)
	}

	cart := api.Group("/cart")
	cart.Use(middleware.AuthMiddleware(config.AppConfig.JWTSecret))
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("", cartCtrl.AddToCart)
		cart.DELETE("/:productId", cartCtrl.RemoveFromCart)
	}
}
