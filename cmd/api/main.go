package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	db "github.com/driftchat/gofiber-dm-api/infrastructure/persistence/database"
	"github.com/driftchat/gofiber-dm-api/pkg/app"
	"github.com/driftchat/gofiber-dm-api/pkg/configs"
	"github.com/driftchat/gofiber-dm-api/pkg/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using existing environment")
	}

	database, err := configs.NewDatabase()
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	if err := db.SetupDatabase(database.DB); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	redisConfig := configs.LoadRedisConfig()
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Host + ":" + redisConfig.Port,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("could not connect to Redis: %v", err)
	}
	log.Println("connected to Redis")

	container := di.NewContainer(database.DB, redisClient, configs.JWTSecret())

	done := make(chan struct{})
	go container.WebSocketHub.Run(done)
	log.Println("WebSocket hub started")

	fiberApp := app.SetupApp(container)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		log.Printf("server listening on port %s", port)
		if err := fiberApp.Listen(":" + port); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-c
	log.Println("shutting down...")

	close(done)

	if err := fiberApp.Shutdown(); err != nil {
		log.Fatalf("error shutting down server: %v", err)
	}

	if err := database.Close(); err != nil {
		log.Fatalf("error closing database: %v", err)
	}

	log.Println("server stopped cleanly")
}
