package reminders

import (
	"context"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type reminderQueueService struct {
	Connection     *amqp091.Connection
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewReminderQueueService(connection *amqp091.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) ReminderQueueService {
	return &reminderQueueService{
		Connection:     connection,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (s *reminderQueueService) Publish(ctx context.Context, message *models.ReminderMessage) error {
	queueName := s.InternalConfig.App.RabbitMQReminderQueue

	channel, err := s.Connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", queueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	s.Log.Info("reminderQueueService.Publish enqueued reminder",
		zap.String(constvars.LoggingQueueKey, queueName),
		zap.Int(constvars.LoggingPlannerIDKey, message.PlannerID),
	)
	return nil
}

func (s *reminderQueueService) Consume(ctx context.Context) (<-chan amqp091.Delivery, error) {
	queueName := s.InternalConfig.App.RabbitMQReminderQueue

	channel, err := s.Connection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQConsumeMessage(err, queueName)
	}

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrRabbitMQConsumeMessage(err, queueName)
	}

	deliveries, err := channel.ConsumeWithContext(ctx, queueName, "", false, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrRabbitMQConsumeMessage(err, queueName)
	}
	return deliveries, nil
}
