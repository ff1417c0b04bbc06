package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the Redis instance shared by the rate limiter.
// Counters change on every request, so client side caching is off.
func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress:  []string{addr},
			DisableCache: true,
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return redisClient
}
