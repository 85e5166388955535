package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/dto/requests"
	"dentaldesk-service/internal/pkg/exceptions"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, user *models.User) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("New Email Creates User With Default Role", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "dentist@example.com").Return(nil, nil)
		userRepo.On("Insert", ctx, mock.AnythingOfType("*models.User")).Return(42, nil)

		usecase := NewAuthUsecase(userRepo, new(MockSessionRepository), &config.InternalConfig{}, zap.NewNop())

		user, err := usecase.SignUp(ctx, &requests.SignUp{
			Firstname: "Dana",
			Lastname:  "Drill",
			Email:     "dentist@example.com",
			Password:  "longenough",
		})
		require.NoError(t, err)
		assert.Equal(t, 42, user.ID)
		assert.Equal(t, constvars.RoleUser, user.Role)
		assert.NotEqual(t, "longenough", user.Password, "password must be stored hashed")
	})

	t.Run("Existing Email Rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "dentist@example.com").Return(&models.User{ID: 1}, nil)

		usecase := NewAuthUsecase(userRepo, new(MockSessionRepository), &config.InternalConfig{}, zap.NewNop())

		_, err := usecase.SignUp(ctx, &requests.SignUp{
			Firstname: "Dana",
			Lastname:  "Drill",
			Email:     "dentist@example.com",
			Password:  "longenough",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		userRepo.AssertNotCalled(t, "Insert", ctx, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Credentials Create Session", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "dentist@example.com").Return(&models.User{
			ID:       7,
			Email:    "dentist@example.com",
			Password: hashOf(t, "correct-horse"),
		}, nil)

		sessionRepo := new(MockSessionRepository)
		sessionRepo.On("CreateSession", ctx, mock.MatchedBy(func(session *models.Session) bool {
			return session.UserID == 7
		})).Return("session-abc", nil)

		usecase := NewAuthUsecase(userRepo, sessionRepo, &config.InternalConfig{}, zap.NewNop())

		login, err := usecase.Login(ctx, &requests.Login{Email: "dentist@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, "session-abc", login.SessionID)
		assert.Equal(t, 7, login.User.ID)
	})

	t.Run("Wrong Password Rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "dentist@example.com").Return(&models.User{
			ID:       7,
			Password: hashOf(t, "correct-horse"),
		}, nil)

		sessionRepo := new(MockSessionRepository)
		usecase := NewAuthUsecase(userRepo, sessionRepo, &config.InternalConfig{}, zap.NewNop())

		_, err := usecase.Login(ctx, &requests.Login{Email: "dentist@example.com", Password: "wrong"})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		sessionRepo.AssertNotCalled(t, "CreateSession", ctx, mock.Anything)
	})

	t.Run("Unknown Email Gets Same Error As Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, nil)

		usecase := NewAuthUsecase(userRepo, new(MockSessionRepository), &config.InternalConfig{}, zap.NewNop())

		_, err := usecase.Login(ctx, &requests.Login{Email: "nobody@example.com", Password: "whatever"})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()

	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("GetSession", ctx, "session-abc").Return(&models.Session{UserID: 7}, nil)
	sessionRepo.On("DeleteSession", ctx, "session-abc").Return(nil)

	userRepo := new(MockUserRepository)
	userRepo.On("Delete", ctx, 7).Return(nil)

	usecase := NewAuthUsecase(userRepo, sessionRepo, &config.InternalConfig{}, zap.NewNop())

	require.NoError(t, usecase.DeleteAccount(ctx, "session-abc"))
	userRepo.AssertCalled(t, "Delete", ctx, 7)
	sessionRepo.AssertCalled(t, "DeleteSession", ctx, "session-abc")
}
