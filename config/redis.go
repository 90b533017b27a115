package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds the shared Redis client and verifies connectivity with a
// bounded retry loop. The client is returned for injection rather than stored
// as a package global.
func ConnectRedis() (*redis.Client, error) {
	opt, err := redisOptions()
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	var lastErr error
	for attempt := 1; attempt <= AppConfig.RedisMaxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), AppConfig.RedisConnTimeout)
		_, lastErr = client.Ping(ctx).Result()
		cancel()

		if lastErr == nil {
			log.Printf("Redis connected (%s)", opt.Addr)
			return client, nil
		}

		log.Printf("Attempt %d/%d - Redis connection failed: %v", attempt, AppConfig.RedisMaxAttempts, lastErr)
		time.Sleep(AppConfig.RedisRetryBackoff)
	}

	client.Close()
	return nil, lastErr
}

func redisOptions() (*redis.Options, error) {
	if AppConfig.RedisURL != "" {
		return redis.ParseURL(AppConfig.RedisURL)
	}

	return &redis.Options{
		Addr:     AppConfig.RedisAddr,
		Password: AppConfig.RedisPassword,
		DB:       AppConfig.RedisDB,
	}, nil
}

func CloseRedis(client *redis.Client) {
	if client != nil {
		if err := client.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Redis connection closed")
		}
	}
}
