package database

import (
	"context"
	"log"

	"github.com/samsuns9sued-hue/marmitariachefe/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		// cache é opcional: sem Redis os lookups vão direto aos serviços externos
		log.Printf("Redis indisponível (%v), cache de geocodificação desativado", err)
		Redis = nil
	}
}
