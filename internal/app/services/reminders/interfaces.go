package reminders

import (
	"context"

	"dentaldesk-service/internal/app/models"

	"github.com/rabbitmq/amqp091-go"
)

type ReminderQueueService interface {
	Publish(ctx context.Context, message *models.ReminderMessage) error
	Consume(ctx context.Context) (<-chan amqp091.Delivery, error)
}

type ReminderUsecase interface {
	UpcomingForUser(ctx context.Context, userID int) ([]models.RecordPlanner, error)
	PublishUpcoming(ctx context.Context) (int, error)
}
