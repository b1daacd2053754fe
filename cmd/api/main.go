package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-agritrace/internal/handler"
	"go-agritrace/internal/middleware"
	"go-agritrace/internal/model"
	"go-agritrace/internal/service"
	"go-agritrace/internal/session"
	"go-agritrace/internal/store"
	"go-agritrace/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Open the record store
	persistence, err := store.OpenSQLite(os.Getenv("AGRITRACE_DB_PATH"))
	if err != nil {
		log.Fatal("Failed to open state database. \n", err)
	}
	defer persistence.Close()
	recordStore := store.Open(persistence)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	sessionState := session.NewState()

	authService := service.NewAuthService(sessionState)
	registryService := service.NewRegistryService(recordStore, wsHub)
	traceService := service.NewTraceService(recordStore)

	authHandler := handler.NewAuthHandler(authService)
	registryHandler := handler.NewRegistryHandler(registryService)
	traceHandler := handler.NewTraceHandler(traceService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "AgriTrace v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(sessionState))

	protected.Post("/auth/logout", authHandler.Logout)

	// Registration routes: each tagged for the one role that may submit.
	protected.Post("/produce", middleware.RequireRole(model.RoleFarmer), registryHandler.RegisterProduce)
	protected.Post("/events", middleware.RequireRole(model.RoleDistributor), registryHandler.RecordEvent)
	protected.Post("/inventory", middleware.RequireRole(model.RoleRetailer), registryHandler.ListAvailability)

	// Dashboard list routes (any authenticated role can view)
	protected.Get("/produce", registryHandler.GetProduce)
	protected.Get("/events", registryHandler.GetEvents)
	protected.Get("/inventory", registryHandler.GetInventory)

	// Consumer scan
	protected.Get("/trace/:batchId", traceHandler.GetHistory)

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

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
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
