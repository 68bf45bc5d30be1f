package database

import (
	"context"
	"fmt"
	"log"

	"healthfirst-service/internal/app/config"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatalf("error pinging Redis: %v", err)
	}

	return client
}
