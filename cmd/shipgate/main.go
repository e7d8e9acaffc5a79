package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cafeatonce/shipgate/config"
	"github.com/cafeatonce/shipgate/internal/cache"
	"github.com/cafeatonce/shipgate/internal/cache/rediscache"
	"github.com/cafeatonce/shipgate/internal/integrations/shiprocket"
	"github.com/cafeatonce/shipgate/internal/services/shipments"
	"github.com/joho/godotenv"
)

func main() {
	// .env опционален: в контейнере всё приходит окружением
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(os.Getenv("configPath"))
	if err != nil {
		panic(fmt.Sprintf("ошибка парсинга конфига, %v", err))
	}

	httpAddr := cfg.Shipgate.HTTPAddr
	if httpAddr == "" {
		httpAddr = ":8001"
	}
	cacheTTL := time.Duration(cfg.Shipgate.TrackingCacheTTLSeconds) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}

	var bc cache.BytesCache
	if cfg.Redis.Host != "" {
		redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
		rc := rediscache.New(redisAddr)
		defer func() { _ = rc.Close() }()
		bc = rc
	}

	client := shiprocket.New(cfg.Shiprocket.BaseURL, cfg.Shiprocket.Email, cfg.Shiprocket.Password)
	svc := shipments.New(client, bc, cacheTTL)

	swaggerPath := os.Getenv("swaggerPath")
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runShipgate(ctx, shipgateOpts{
		httpAddr:    httpAddr,
		swaggerPath: swaggerPath,
	}, svc); err != nil && err != context.Canceled {
		panic(err)
	}
}
