package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"marketplace/internal/handlers"
	"marketplace/internal/repositories"
	"marketplace/internal/services"
	"marketplace/internal/store"
	"marketplace/pkg/rabbitmq"
)

// buildApp wires repositories, services, and handlers into a Fiber app.
func buildApp(st *store.Store, listingRepo repositories.ListingRepository, orderRepo repositories.OrderRepository, publisher services.EventPublisher) *fiber.App {
	listingService := services.NewListingService(listingRepo)
	orderService := services.NewOrderService(orderRepo, listingRepo, publisher)

	listingHandler := handlers.NewListingHandler(listingService)
	orderHandler := handlers.NewOrderHandler(orderService)
	systemHandler := handlers.NewSystemHandler(st)

	app := fiber.New()

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(cors.New())

	systemHandler.RegisterRoutes(app)

	api := app.Group("/api")
	listingHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)

	return app
}

func main() {
	// --- Configuration ---
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "marketplace")
	viper.AutomaticEnv()

	port := viper.GetString("PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	databaseName := viper.GetString("DATABASE_NAME")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Document store ---
	st, err := store.Connect(databaseURL, databaseName)
	if err != nil {
		log.Fatalf("Failed to connect to document store: %v", err)
	}
	log.Printf("Connected to document store %q", databaseName)

	// --- Optional order event publisher ---
	var publisher services.EventPublisher
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			publisher = mqClient
			defer mqClient.Close()
		}
	}

	// --- Repositories and app ---
	listingRepo := repositories.NewMongoListingRepository(st)
	orderRepo := repositories.NewMongoOrderRepository(st)
	app := buildApp(st, listingRepo, orderRepo, publisher)

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := st.Close(ctx); err != nil {
		log.Printf("Error closing document store: %v", err)
	}

	log.Println("Server gracefully stopped")
}
