package reminders

import (
	"context"
	"fmt"
	"time"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/app/services/patients"
	"dentaldesk-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type reminderUsecase struct {
	PlannerRepository patients.PlannerRepository
	BiodataRepository patients.BiodataRepository
	QueueService      ReminderQueueService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewReminderUsecase(
	plannerRepository patients.PlannerRepository,
	biodataRepository patients.BiodataRepository,
	queueService ReminderQueueService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) ReminderUsecase {
	return &reminderUsecase{
		PlannerRepository: plannerRepository,
		BiodataRepository: biodataRepository,
		QueueService:      queueService,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *reminderUsecase) window() (string, string) {
	now := time.Now().UTC()
	from := now.Format(time.RFC3339)
	to := now.AddDate(0, 0, uc.InternalConfig.Reminder.LookaheadInDays).Format(time.RFC3339)
	return from, to
}

func (uc *reminderUsecase) UpcomingForUser(ctx context.Context, userID int) ([]models.RecordPlanner, error) {
	from, to := uc.window()
	return uc.PlannerRepository.FindUpcomingPlannedByUser(ctx, userID, from, to)
}

// PublishUpcoming enqueues one reminder per planned item inside the lookahead
// window whose patient has an email on file. Returns the number enqueued.
func (uc *reminderUsecase) PublishUpcoming(ctx context.Context) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	from, to := uc.window()

	planners, err := uc.PlannerRepository.FindUpcomingPlanned(ctx, from, to)
	if err != nil {
		uc.Log.Error("reminderUsecase.PublishUpcoming error listing planners",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	published := 0
	for _, planner := range planners {
		if planner.PlannedDate == nil {
			continue
		}

		biodata, err := uc.BiodataRepository.FindByPatientID(ctx, planner.PatientID)
		if err != nil {
			uc.Log.Error("reminderUsecase.PublishUpcoming error loading biodata",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingPatientIDKey, planner.PatientID),
				zap.Error(err),
			)
			continue
		}
		if biodata == nil || biodata.Email == nil {
			continue
		}

		message := &models.ReminderMessage{
			PlannerID:    planner.ID,
			PatientID:    planner.PatientID,
			PatientName:  fmt.Sprintf("%s %s", biodata.FirstName, biodata.LastName),
			PatientEmail: *biodata.Email,
			Title:        planner.Title,
			PlannedDate:  *planner.PlannedDate,
		}

		if err := uc.QueueService.Publish(ctx, message); err != nil {
			uc.Log.Error("reminderUsecase.PublishUpcoming error publishing reminder",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingPlannerIDKey, planner.ID),
				zap.Error(err),
			)
			continue
		}
		published++
	}

	return published, nil
}
