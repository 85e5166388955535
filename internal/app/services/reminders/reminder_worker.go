package reminders

import (
	"context"
	"fmt"
	"time"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/app/services/shared/smtp"
	"dentaldesk-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ReminderWorker drains the reminder queue and emails patients, paced so a
// large window sweep cannot flood the SMTP relay.
type ReminderWorker struct {
	Usecase        ReminderUsecase
	QueueService   ReminderQueueService
	SMTPService    smtp.SMTPService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger

	limiter *rate.Limiter
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewReminderWorker(
	usecase ReminderUsecase,
	queueService ReminderQueueService,
	smtpService smtp.SMTPService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *ReminderWorker {
	perSecond := internalConfig.Reminder.EmailsPerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	return &ReminderWorker{
		Usecase:        usecase,
		QueueService:   queueService,
		SMTPService:    smtpService,
		InternalConfig: internalConfig,
		Log:            logger,
		limiter:        rate.NewLimiter(rate.Limit(perSecond), perSecond),
		done:           make(chan struct{}),
	}
}

func (w *ReminderWorker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go w.sweepLoop(ctx)
	go w.consumeLoop(ctx)
}

func (w *ReminderWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	select {
	case <-w.done:
	case <-time.After(5 * time.Second):
		w.Log.Warn("ReminderWorker.Stop timed out waiting for consumer")
	}
}

func (w *ReminderWorker) sweepLoop(ctx context.Context) {
	interval := time.Duration(w.InternalConfig.Reminder.IntervalInMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			published, err := w.Usecase.PublishUpcoming(ctx)
			if err != nil {
				w.Log.Error("ReminderWorker sweep failed", zap.Error(err))
				continue
			}
			w.Log.Info("ReminderWorker sweep completed", zap.Int("published", published))
		}
	}
}

func (w *ReminderWorker) consumeLoop(ctx context.Context) {
	defer close(w.done)

	deliveries, err := w.QueueService.Consume(ctx)
	if err != nil {
		w.Log.Error("ReminderWorker failed to start consumer", zap.Error(err))
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}

			if err := w.limiter.Wait(ctx); err != nil {
				delivery.Nack(false, true)
				return
			}

			var message models.ReminderMessage
			if err := json.Unmarshal(delivery.Body, &message); err != nil {
				w.Log.Error("ReminderWorker discarding malformed message", zap.Error(err))
				delivery.Nack(false, false)
				continue
			}

			if err := w.sendReminder(&message); err != nil {
				w.Log.Error("ReminderWorker failed to send reminder",
					zap.Int(constvars.LoggingPlannerIDKey, message.PlannerID),
					zap.Error(err),
				)
				delivery.Nack(false, true)
				continue
			}
			delivery.Ack(false)
		}
	}
}

func (w *ReminderWorker) sendReminder(message *models.ReminderMessage) error {
	subject := constvars.ReminderEmailSubject
	body := fmt.Sprintf(constvars.ReminderEmailBodyFormat,
		message.PatientName,
		message.Title,
		message.PlannedDate.Format(constvars.DateOnlyFormat),
	)
	return w.SMTPService.SendEmail(message.PatientEmail, subject, body)
}
