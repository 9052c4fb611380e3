package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"travelbooking/internal/config"
	"travelbooking/internal/handler"
	"travelbooking/internal/notify"
	"travelbooking/internal/repository"
	"travelbooking/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// Уведомления в Telegram включаются только при заданных BOT_TOKEN и BOT_CHAT_ID
	var notifier notify.Notifier = notify.Nop{}
	if cfg.NotificationsEnabled() {
		tg, err := notify.NewTelegramNotifier(cfg.BotToken, cfg.BotChatID, cfg.NotifyTimeout)
		if err != nil {
			log.Fatalf("Ошибка инициализации уведомлений: %v", err)
		}
		notifier = tg
		logger.Info("telegram notifications enabled", "chat_id", cfg.BotChatID)
	}

	// Инициализируем репозитории
	accountRepo := repository.NewAccountRepository()
	bookingRepo := repository.NewBookingRepository()
	destinationRepo := repository.NewDestinationRepository(repository.DefaultDestinations())
	// Инициализируем сервисы
	authService := service.NewAuthService(accountRepo)
	userService := service.NewUserService(accountRepo, logger)
	destinationService := service.NewDestinationService(destinationRepo)
	bookingService := service.NewBookingService(bookingRepo, destinationService, notifier, logger)

	// Создаем Handler и регистрируем маршруты
	gin.SetMode(cfg.GinMode)
	h := handler.NewHandler(authService, userService, destinationService, bookingService, logger)
	router := gin.Default()
	router.Use(handler.RequestID())
	h.Register(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
		return
	}
	logger.Info("server stopped")
}
