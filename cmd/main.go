package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizforge/internal/config"
	"quizforge/internal/genai"
	"quizforge/internal/handlers"
	"quizforge/internal/logger"
	"quizforge/internal/repository"
	"quizforge/internal/server"
	"quizforge/internal/service"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env holds GEMINI_KEY and JWT_SECRET in dev; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error loading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)

	db, err := repository.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	gen := genai.NewClient(cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiKey)
	services := service.NewService(repos, gen, cfg.JWTSecret)
	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	go func() {
		log.Infow("starting http server", "port", cfg.Port)
		if err := srv.Run(cfg.Port, apiHandler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

// waitForShutdown blocks on termination signals and drains in-flight requests.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
