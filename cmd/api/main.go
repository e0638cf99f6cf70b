package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/Venkat-46/devs-dairy-backend/internal/config"
	"github.com/Venkat-46/devs-dairy-backend/internal/handler"
	"github.com/Venkat-46/devs-dairy-backend/internal/middleware"
	"github.com/Venkat-46/devs-dairy-backend/internal/repository"
	"github.com/Venkat-46/devs-dairy-backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := repository.Migrate(context.Background(), db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewLogRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo)
	guard := service.NewGuard(userRepo)
	logService := service.NewLogService(logRepo, guard)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	logHandler := handler.NewLogHandler(logService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/signup", authHandler.HandleSignup)
	r.Post("/login", authHandler.HandleLogin)

	r.Get("/users", userHandler.HandleListUsers)
	r.Get("/users/{userid}", userHandler.HandleGetUser)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		r.Get("/userlogs/{userid}", logHandler.HandleListLogs)
		r.Get("/userlogs/{userid}/{logid}", logHandler.HandleGetLog)
		r.Post("/userlogs/{userid}", logHandler.HandleAddLog)
		r.Post("/userlogs/update/{userid}/{logid}", logHandler.HandleUpdateLog)
		r.Delete("/userlogs/delete/{userid}/{logid}", logHandler.HandleDeleteLog)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
