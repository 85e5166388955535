package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/models"
)

type MockPlannerRepository struct {
	mock.Mock
}

func (m *MockPlannerRepository) FindByPatientID(ctx context.Context, patientID int) ([]models.RecordPlanner, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]models.RecordPlanner), args.Error(1)
}

func (m *MockPlannerRepository) FindByID(ctx context.Context, plannerID int) (*models.RecordPlanner, error) {
	args := m.Called(ctx, plannerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecordPlanner), args.Error(1)
}

func (m *MockPlannerRepository) FindUpcomingPlanned(ctx context.Context, from, to string) ([]models.RecordPlanner, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecordPlanner), args.Error(1)
}

func (m *MockPlannerRepository) FindUpcomingPlannedByUser(ctx context.Context, userID int, from, to string) ([]models.RecordPlanner, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecordPlanner), args.Error(1)
}

func (m *MockPlannerRepository) Insert(ctx context.Context, planner *models.RecordPlanner) (*models.RecordPlanner, error) {
	args := m.Called(ctx, planner)
	return args.Get(0).(*models.RecordPlanner), args.Error(1)
}

func (m *MockPlannerRepository) Update(ctx context.Context, planner *models.RecordPlanner) (*models.RecordPlanner, error) {
	args := m.Called(ctx, planner)
	return args.Get(0).(*models.RecordPlanner), args.Error(1)
}

func (m *MockPlannerRepository) Delete(ctx context.Context, plannerID int) error {
	args := m.Called(ctx, plannerID)
	return args.Error(0)
}

type MockBiodataRepository struct {
	mock.Mock
}

func (m *MockBiodataRepository) FindByPatientID(ctx context.Context, patientID int) (*models.PatientBiodata, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PatientBiodata), args.Error(1)
}

func (m *MockBiodataRepository) Insert(ctx context.Context, biodata *models.PatientBiodata) (*models.PatientBiodata, error) {
	args := m.Called(ctx, biodata)
	return args.Get(0).(*models.PatientBiodata), args.Error(1)
}

func (m *MockBiodataRepository) Update(ctx context.Context, biodata *models.PatientBiodata) (*models.PatientBiodata, error) {
	args := m.Called(ctx, biodata)
	return args.Get(0).(*models.PatientBiodata), args.Error(1)
}

type MockReminderQueueService struct {
	mock.Mock
}

func (m *MockReminderQueueService) Publish(ctx context.Context, message *models.ReminderMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockReminderQueueService) Consume(ctx context.Context) (<-chan amqp091.Delivery, error) {
	args := m.Called(ctx)
	return args.Get(0).(<-chan amqp091.Delivery), args.Error(1)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Reminder: config.Reminder{
			LookaheadInDays:   3,
			IntervalInMinutes: 60,
			EmailsPerSecond:   2,
		},
	}
}

func strPtr(value string) *string { return &value }

func timePtr(value time.Time) *time.Time { return &value }

func TestPublishUpcoming(t *testing.T) {
	ctx := context.Background()

	t.Run("Publishes Only Items With Email And Date", func(t *testing.T) {
		plannedDate := time.Now().UTC().Add(24 * time.Hour)
		planners := []models.RecordPlanner{
			{ID: 1, PatientID: 10, Title: "Scaling", Status: "planned", PlannedDate: timePtr(plannedDate)},
			{ID: 2, PatientID: 11, Title: "Filling", Status: "planned", PlannedDate: nil},
			{ID: 3, PatientID: 12, Title: "Crown", Status: "planned", PlannedDate: timePtr(plannedDate)},
		}

		plannerRepo := new(MockPlannerRepository)
		plannerRepo.On("FindUpcomingPlanned", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(planners, nil)

		biodataRepo := new(MockBiodataRepository)
		biodataRepo.On("FindByPatientID", ctx, 10).Return(&models.PatientBiodata{
			PatientID: 10, FirstName: "Alice", LastName: "Archer", Email: strPtr("alice@example.com"),
		}, nil)
		biodataRepo.On("FindByPatientID", ctx, 12).Return(&models.PatientBiodata{
			PatientID: 12, FirstName: "Carol", LastName: "Cox",
		}, nil)

		queue := new(MockReminderQueueService)
		queue.On("Publish", ctx, mock.MatchedBy(func(message *models.ReminderMessage) bool {
			return message.PlannerID == 1 && message.PatientEmail == "alice@example.com" && message.PatientName == "Alice Archer"
		})).Return(nil)

		usecase := NewReminderUsecase(plannerRepo, biodataRepo, queue, testInternalConfig(), zap.NewNop())

		published, err := usecase.PublishUpcoming(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, published, "only the planner with a date and an email should publish")

		queue.AssertNumberOfCalls(t, "Publish", 1)
		biodataRepo.AssertNotCalled(t, "FindByPatientID", ctx, 11)
	})

	t.Run("Publish Failure Skips Item", func(t *testing.T) {
		plannedDate := time.Now().UTC().Add(24 * time.Hour)
		planners := []models.RecordPlanner{
			{ID: 1, PatientID: 10, Title: "Scaling", Status: "planned", PlannedDate: timePtr(plannedDate)},
			{ID: 2, PatientID: 11, Title: "Filling", Status: "planned", PlannedDate: timePtr(plannedDate)},
		}

		plannerRepo := new(MockPlannerRepository)
		plannerRepo.On("FindUpcomingPlanned", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(planners, nil)

		biodataRepo := new(MockBiodataRepository)
		biodataRepo.On("FindByPatientID", ctx, 10).Return(&models.PatientBiodata{
			PatientID: 10, FirstName: "Alice", LastName: "Archer", Email: strPtr("alice@example.com"),
		}, nil)
		biodataRepo.On("FindByPatientID", ctx, 11).Return(&models.PatientBiodata{
			PatientID: 11, FirstName: "Bob", LastName: "Bell", Email: strPtr("bob@example.com"),
		}, nil)

		queue := new(MockReminderQueueService)
		queue.On("Publish", ctx, mock.MatchedBy(func(message *models.ReminderMessage) bool {
			return message.PlannerID == 1
		})).Return(errors.New("broker down"))
		queue.On("Publish", ctx, mock.MatchedBy(func(message *models.ReminderMessage) bool {
			return message.PlannerID == 2
		})).Return(nil)

		usecase := NewReminderUsecase(plannerRepo, biodataRepo, queue, testInternalConfig(), zap.NewNop())

		published, err := usecase.PublishUpcoming(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, published)
	})

	t.Run("Listing Failure Propagates", func(t *testing.T) {
		plannerRepo := new(MockPlannerRepository)
		plannerRepo.On("FindUpcomingPlanned", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil, errors.New("boom"))

		usecase := NewReminderUsecase(plannerRepo, new(MockBiodataRepository), new(MockReminderQueueService), testInternalConfig(), zap.NewNop())

		_, err := usecase.PublishUpcoming(ctx)
		assert.Error(t, err)
	})
}

func TestUpcomingForUserUsesLookaheadWindow(t *testing.T) {
	ctx := context.Background()

	plannerRepo := new(MockPlannerRepository)
	plannerRepo.On("FindUpcomingPlannedByUser", ctx, 7, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			from, errFrom := time.Parse(time.RFC3339, args.String(2))
			to, errTo := time.Parse(time.RFC3339, args.String(3))
			require.NoError(t, errFrom)
			require.NoError(t, errTo)
			assert.WithinDuration(t, from.AddDate(0, 0, 3), to, time.Minute)
		}).
		Return([]models.RecordPlanner{}, nil)

	usecase := NewReminderUsecase(plannerRepo, new(MockBiodataRepository), new(MockReminderQueueService), testInternalConfig(), zap.NewNop())

	upcoming, err := usecase.UpcomingForUser(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}
