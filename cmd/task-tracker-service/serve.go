package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"task-tracker-service/internal/config"
	httpapi "task-tracker-service/internal/http"
	"task-tracker-service/internal/repository"
	"task-tracker-service/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracker HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		// Контекст для корректного завершения
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Инициализация логгера (JSON)
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		// Подключение к БД
		db, err := repository.NewPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("failed to init postgres: %v", err)
		}
		defer db.Pool.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("failed to migrate schema: %v", err)
		}

		// 1. Инициализация репозиториев
		userRepo := repository.NewUserRepo(db)
		taskRepo := repository.NewTaskRepo(db)

		// 2. Инициализация Менеджера Транзакций
		txManager := repository.NewTransactionManager(db)

		// 3. Инициализация сервисов
		trackerService := service.NewTrackerService(userRepo, taskRepo, txManager)
		reportService := service.NewReportService(taskRepo)

		// 4. Инициализация HTTP-обработчика
		handler := httpapi.NewHandler(trackerService, reportService, logger)

		server := &http.Server{
			Addr:    cfg.AppURL,
			Handler: handler.Router(),
		}

		// Запуск сервера в горутине
		go func() {
			logger.Info("starting http server", slog.String("addr", server.Addr))
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("server error", slog.Any("err", err))
				cancel()
			}
		}()

		// Graceful Shutdown
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		<-stop
		logger.Info("shutting down server")

		ctxShutdown, cancelShutdown := context.WithTimeout(
			context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", slog.Any("err", err))
		}

		logger.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
