package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go-hrfms/internal/sheets"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func connectRedisWithRetry(addr string, attempts int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	var err error
	for i := 1; i <= attempts; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			return rdb, nil
		}
		zap.L().Warn("redis not ready, retrying",
			zap.String("addr", addr),
			zap.Int("attempt", i),
			zap.Error(err),
		)
		time.Sleep(time.Duration(i) * time.Second)
	}
	return nil, fmt.Errorf("connect redis %s: %w", addr, err)
}

// BuildApp wires infrastructure, feature modules and routes onto the router.
func BuildApp(router *gin.Engine) error {
	baseURL := os.Getenv("SHEETS_API_URL")
	if baseURL == "" {
		return fmt.Errorf("SHEETS_API_URL is required")
	}

	client := sheets.NewClient(sheets.ClientConfig{
		BaseURL: baseURL,
	})
	zap.L().Info("sheets client configured", zap.String("base_url", baseURL))

	rdb, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	return registerModules(router, client, rdb, zap.L())
}
