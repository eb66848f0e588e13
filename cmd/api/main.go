package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-catalog-api/internal/handler"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/service"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/cache"
	"go-catalog-api/pkg/config"
	"go-catalog-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

func main() {
	// 1. Resolve configuration
	cfg := config.Load()

	// 2. Setup Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}
	defer database.Close(db)

	if err := db.AutoMigrate(&model.Product{}, &model.Review{}, &model.User{}, &model.Quote{}); err != nil {
		log.Fatal("Failed to migrate schema. \n", err)
	}

	// 3. Optional Redis cache for hot list reads
	var productCache *cache.ProductCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()
		productCache = cache.New(rdb, cfg.CacheTTL)
		log.Println("Redis cache enabled at", cfg.RedisAddr)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	userRepo := repository.NewUserRepo(db)
	quoteRepo := repository.NewQuoteRepo(db)

	catalogService := service.NewCatalogService(productRepo, productCache, wsHub)
	userService := service.NewUserService(userRepo)
	quoteService := service.NewQuoteService(quoteRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	userHandler := handler.NewUserHandler(userService)
	quoteHandler := handler.NewQuoteHandler(quoteService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Catalog API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	app.Get("/get-products", catalogHandler.GetProducts)
	app.Get("/get-product/:product_id", catalogHandler.GetProduct)
	app.Post("/add-product", catalogHandler.AddProduct)
	app.Put("/update-product/:product_id", catalogHandler.UpdateProduct)
	app.Delete("/delete-product/:product_id", catalogHandler.DeleteProduct)
	app.Get("/category/:category", catalogHandler.GetProductsByCategory)
	app.Get("/featured", catalogHandler.GetFeaturedProducts)
	app.Post("/add-review/:product_id", catalogHandler.AddReview)
	app.Put("/update-stock/:product_id", catalogHandler.UpdateStock)

	app.Get("/get-users", userHandler.GetUsers)
	app.Get("/get-user/:user_id", userHandler.GetUser)
	app.Post("/add-user", userHandler.AddUser)
	app.Put("/update-user/:user_id", userHandler.UpdateUser)
	app.Delete("/delete-user/:user_id", userHandler.DeleteUser)

	app.Get("/get-quotes", quoteHandler.GetQuotes)
	app.Get("/get-specific-quote/:quote_id", quoteHandler.GetQuote)
	app.Get("/random-quote", quoteHandler.GetRandomQuote)
	app.Post("/add-quote", quoteHandler.AddQuote)
	app.Put("/update-quote/:quote_id", quoteHandler.UpdateQuote)
	app.Delete("/delete-quote/:quote_id", quoteHandler.DeleteQuote)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
