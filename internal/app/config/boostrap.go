package config

import (
	"context"
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Postgres       *sql.DB
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// ReminderWorkerStop if set will be called during Shutdown to gracefully
	// stop the reminder worker
	ReminderWorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.ReminderWorkerStop != nil {
		b.ReminderWorkerStop()
		log.Println("Successfully stopped reminder worker")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Postgres != nil {
		if err := b.Postgres.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Postgres")
	}

	if b.Logger != nil {
		if err := b.Logger.Sync(); err != nil {
			return err
		}
		log.Println("Successfully closing Logger")
	}

	return nil
}
