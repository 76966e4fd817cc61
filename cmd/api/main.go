package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/freshmart/grocery-api/internal/config"
	"github.com/freshmart/grocery-api/internal/handler"
	"github.com/freshmart/grocery-api/internal/notify"
	"github.com/freshmart/grocery-api/internal/repository"
	"github.com/freshmart/grocery-api/internal/seed"
	"github.com/freshmart/grocery-api/internal/service"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Repositories
	userRepo := repository.NewUserRepository()
	otpRepo := repository.NewOTPRepository()
	categoryRepo := repository.NewCategoryRepository()
	productRepo := repository.NewProductRepository()
	orderRepo := repository.NewOrderRepository()

	// Notifier: real email when Mailgun is configured, log sink otherwise.
	// Either way delivery runs on a background dispatcher so business
	// operations never wait on it.
	var sink notify.Notifier
	if cfg.Mailgun.Enabled() {
		sink = notify.NewMailgunNotifier(cfg.Mailgun.Domain, cfg.Mailgun.APIKey, cfg.Mailgun.Sender, log)
		log.Info("using Mailgun notifier", "domain", cfg.Mailgun.Domain)
	} else {
		sink = notify.NewLogNotifier(log)
	}
	dispatcher := notify.NewDispatcher(sink, cfg.Order.NotifyQueueSize, log)
	dispatcher.Start(ctx)

	// Services
	authSvc := service.NewAuthService(userRepo, otpRepo, dispatcher, cfg.OTP.TTL)
	catalogSvc := service.NewCatalogService(categoryRepo, productRepo)
	orderSvc := service.NewOrderService(orderRepo, productRepo, userRepo, dispatcher, cfg.Order.ReserveStock, cfg.Order.DefaultDelivery)

	// Handlers
	authH := handler.NewAuthHandler(authSvc, cfg.OTP.Echo)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	healthH := handler.NewHealthHandler()

	// Router
	router := gin.Default()
	router.GET("/healthz", healthH.Healthz)

	auth := router.Group("/auth")
	auth.POST("/register-admin", authH.RegisterAdmin)
	auth.POST("/send-otp", authH.SendOTP)
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)

	router.GET("/categories", catalogH.ListCategories)
	router.POST("/categories", catalogH.CreateCategory)

	router.GET("/products", catalogH.ListProducts)
	router.POST("/products", catalogH.CreateProduct)
	router.DELETE("/products/:id", catalogH.DeleteProduct)

	orders := router.Group("/orders")
	orders.GET("", orderH.ListOrders)
	orders.GET("/customer/:customerId", orderH.ListCustomerOrders)
	orders.POST("", orderH.CreateOrder)
	orders.PUT("/:id/status", orderH.UpdateStatus)

	if err := seed.Run(ctx, categoryRepo, productRepo, log); err != nil {
		log.Error("seed data", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	dispatcher.Stop()
	cancel()
	log.Info("server stopped")
}
