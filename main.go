package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/handlers"
	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/paystack"
	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/routes"
	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/storage"
)

func main() {
	log.Println("Starting portfolio backend...")

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	secretKey := os.Getenv("PAYSTACK_SECRET_KEY")
	if secretKey == "" {
		log.Fatal("PAYSTACK_SECRET_KEY must be set")
	}

	// Storage: in-memory by default, MongoDB when MONGODB_URI is set.
	var store storage.Storage
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		log.Println("Connecting to MongoDB...")
		mongoStore, err := storage.NewMongo(context.Background(), uri)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB: ", err)
		}
		store = mongoStore
		log.Println("MongoDB connected")
	} else {
		store = storage.NewMemory()
		log.Println("Using in-memory storage")
	}

	if err := storage.Seed(context.Background(), store); err != nil {
		log.Fatal("Failed to seed storage: ", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	payments := paystack.New(paystack.Config{SecretKey: secretKey})
	handler := handlers.New(store, payments)
	router := routes.SetupRouter(handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Println("Storage close: ", err)
	}

	log.Println("Server stopped")
}
