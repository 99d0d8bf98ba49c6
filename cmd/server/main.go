package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/solo-mizan/goru-club/internal/auth"
	"github.com/solo-mizan/goru-club/internal/config"
	"github.com/solo-mizan/goru-club/internal/database"
	"github.com/solo-mizan/goru-club/internal/db"
	"github.com/solo-mizan/goru-club/internal/handlers"
	"github.com/solo-mizan/goru-club/internal/health"
	apihttp "github.com/solo-mizan/goru-club/internal/http"
	"github.com/solo-mizan/goru-club/internal/middleware"
	"github.com/solo-mizan/goru-club/internal/repositories"
	"github.com/solo-mizan/goru-club/internal/services"
	"github.com/solo-mizan/goru-club/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	if pool != nil {
		defer pool.Close()

		migrator := database.NewMigrator(pool, migrations.FS)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migrator.Run(ctx); err != nil {
			logger.Warn("migrations could not be applied, continuing", "error", err)
		}
		cancel()
	}

	jwtManager := auth.NewJWTManager(cfg)

	memberRepo := repositories.NewMemberRepository(pool)
	depositRepo := repositories.NewDepositRepository(pool)
	cowPurchaseRepo := repositories.NewCowPurchaseRepository(pool)
	receiptStore := services.NewDiskReceiptStore(cfg.Uploads.Dir, cfg.Uploads.PublicPath)

	memberService := services.NewMemberService(memberRepo, depositRepo)
	depositService := services.NewDepositService(depositRepo, memberRepo)
	cowPurchaseService := services.NewCowPurchaseService(cowPurchaseRepo, receiptStore, logger)

	memberHandler := handlers.NewMemberHandler(memberService)
	depositHandler := handlers.NewDepositHandler(depositService)
	cowPurchaseHandler := handlers.NewCowPurchaseHandler(cowPurchaseService)
	authHandler := handlers.NewAuthHandler(jwtManager)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS()
	metrics := middleware.NewMetrics()

	router := apihttp.NewRouter(
		memberHandler,
		depositHandler,
		cowPurchaseHandler,
		authHandler,
		healthHandler,
		authMiddleware,
		metrics,
		apihttp.RouterConfig{UploadsDir: cfg.Uploads.Dir, PublicPath: cfg.Uploads.PublicPath},
	)

	handler := middleware.SecurityHeaders(corsMiddleware(router))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
