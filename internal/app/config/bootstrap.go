package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Logger != nil {
		// Sync on stdout/stderr returns EINVAL on some platforms.
		_ = b.Logger.Sync()
		log.Println("Successfully closing Logger")
	}

	return nil
}
