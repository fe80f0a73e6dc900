package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dailytask-backend/internal/auth"
	"dailytask-backend/internal/config"
	"dailytask-backend/internal/database"
	"dailytask-backend/internal/handlers"
	"dailytask-backend/internal/mailer"
	"dailytask-backend/internal/repository"
	"dailytask-backend/internal/server"
	"dailytask-backend/internal/watcher"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Connect to MongoDB
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Connect(connectCtx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Initialize repositories
	taskRepo := repository.NewTaskRepo(db.Collection("task"))
	userRepo := repository.NewUserRepo(db.Collection("users"))

	// Ensure indexes
	idxCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := taskRepo.EnsureIndexes(idxCtx); err != nil {
		log.Printf("⚠️  Warning: failed to create task indexes: %v", err)
	}
	cancel()

	// Welcome mail goes through Resend when configured, otherwise the logs
	var welcome mailer.Mailer
	if cfg.ResendAPIKey != "" {
		welcome = mailer.NewResendMailer(cfg.ResendAPIKey, cfg.FromEmail)
	} else {
		welcome = mailer.NewLogMailer()
	}

	tokens := auth.NewTokenService(cfg.TokenSecret)

	// Initialize handlers and router
	router := server.NewRouter(server.Deps{
		Auth:     handlers.NewAuthHandler(tokens),
		Tasks:    handlers.NewTaskHandler(taskRepo),
		Users:    handlers.NewUserHandler(userRepo, welcome),
		Verifier: tokens,
	})

	// Change observer runs outside the request path for the process lifetime
	watchCtx, stopWatcher := context.WithCancel(context.Background())
	go func() {
		if err := watcher.New(taskRepo).Run(watchCtx); err != nil {
			log.Printf("⚠️  Change observer stopped: %v", err)
		}
	}()

	srv := server.New(cfg.Port, router)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	log.Printf("🚀 Daily Task backend starting on port %s", cfg.Port)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("❌ Server failed: %v", err)
		}
	case <-sigCtx.Done():
	}

	// Drain in-flight requests, then release the stream and the client
	log.Println("⏳ Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Server shutdown: %v", err)
	}
	stopWatcher()
	if err := db.Close(shutdownCtx); err != nil {
		log.Printf("⚠️  MongoDB disconnect: %v", err)
	}
	log.Println("👋 Daily Task backend stopped")
}
