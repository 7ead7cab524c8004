package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/city_response_dashboard/internal/client"
	"github.com/shenikar/city_response_dashboard/internal/config"
	v1 "github.com/shenikar/city_response_dashboard/internal/handler/http/v1"
	"github.com/shenikar/city_response_dashboard/internal/metrics"
	"github.com/shenikar/city_response_dashboard/internal/realtime"
	"github.com/shenikar/city_response_dashboard/internal/service"
	"github.com/shenikar/city_response_dashboard/internal/webhook"
	"github.com/shenikar/city_response_dashboard/pkg/logger"
	redisclient "github.com/shenikar/city_response_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/city_response_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title City Response Dashboard API
// @version 1.0
// @description Operator dashboard for the emergency-response simulation.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	collector := metrics.NewCollector()

	// Хаб WebSocket-клиентов
	hub := realtime.NewHub(log, collector.SetClients)
	go hub.Run(ctx)

	// Оповещения о смене инцидентов идут через Redis, если он настроен
	var alerts webhook.AlertPublisher = webhook.NoopPublisher{}
	var worker *webhook.AlertWorker
	if cfg.AlertsEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		alerts = webhook.NewRedisAlertPublisher(redisClient)
		worker = webhook.NewAlertWorker(redisClient, log, cfg)
		worker.Start(ctx)
	} else {
		log.Info("REDIS_ADDR is not set, incident alerts are disabled")
	}

	// Клиент бэкенда симуляции
	backend := client.New(cfg.APIURL, cfg.RequestTimeout, log)

	// Инициализация дашборда
	dashboard := service.NewDashboard(backend, alerts, hub, collector, service.OptionsFromConfig(cfg), log)
	dispose, err := dashboard.Start(ctx)
	if err != nil {
		log.Fatalf("Failed to start dashboard: %v", err)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboard, hub.Handle, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(collector.Middleware())
	handler.RegisterPages(router)
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики и Swagger UI
	router.GET("/metrics", gin.WrapH(collector.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithField("api_url", cfg.APIURL).Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Сначала останавливаем опрос, чтобы поздние ответы не попали в состояние
	dispose()
	dashboard.Wait()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	cancel()
	if worker != nil {
		<-worker.Done()
	}

	log.Info("Server gracefully stopped")
}
