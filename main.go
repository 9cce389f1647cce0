package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-swiftmart/config"
	"gin-swiftmart/controllers"
	"gin-swiftmart/infra"
	"gin-swiftmart/repositories"
	"gin-swiftmart/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {

	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository, cfg.SecretKey)
	authController := controllers.NewAuthController(authService)

	productRepository := repositories.NewProductRepository(db)
	productService := services.NewProductService(productRepository)
	productController := controllers.NewProductController(productService)

	cartRepository := repositories.NewCartRepository(db)
	cartService := services.NewCartService(cartRepository, productRepository)
	cartController := controllers.NewCartController(cartService)

	r := gin.Default()
	r.Use(cors.Default())

	r.POST("/signup", authController.Signup)
	r.POST("/login", authController.Login)
	r.GET("/products", productController.FindAll)
	r.POST("/add-products", productController.Seed)

	cartRouter := r.Group("/cart")
	cartRouter.POST("/add/:user_id/:product_id", cartController.AddItem)
	cartRouter.GET("/:user_id", cartController.GetCart)
	cartRouter.DELETE("/remove/:user_id/:product_id", cartController.RemoveItem)

	return r
}

func main() {
	infra.Initialize()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := infra.SetupDB(cfg)
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := setupRouter(db, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
