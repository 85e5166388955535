package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/delivery/http/middlewares"
	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/app/services/auth"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/dto/requests"
	"dentaldesk-service/internal/pkg/dto/responses"
	"dentaldesk-service/internal/pkg/utils"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) SignUp(ctx context.Context, request *requests.SignUp) (*models.User, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthUsecase) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthUsecase) DeleteAccount(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
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

func testRouter(authUsecase auth.AuthUsecase, sessionRepo *MockSessionRepository) (*chi.Mux, *config.InternalConfig) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT:     config.JWT{Secret: "test-jwt-secret", ExpTimeInHour: 24},
		Session: config.Session{TTLInSeconds: 86400},
	}

	middlewareInstance := middlewares.NewMiddlewares(sessionRepo, internalConfig, logger)
	authController := auth.NewAuthController(authUsecase, internalConfig, logger)

	router := chi.NewRouter()
	router.Route("/auth", func(r chi.Router) {
		attachAuthRoutes(r, middlewareInstance, authController)
	})
	return router, internalConfig
}

func TestAuthRouter_Login(t *testing.T) {
	t.Run("Sets Session Cookie", func(t *testing.T) {
		mockUsecase := new(MockAuthUsecase)
		mockUsecase.On("Login", mock.Anything, mock.MatchedBy(func(request *requests.Login) bool {
			return request.Email == "dentist@example.com"
		})).Return(&responses.Login{
			User:      models.User{ID: 7, Email: "dentist@example.com"},
			SessionID: "session-abc",
		}, nil)

		router, _ := testRouter(mockUsecase, new(MockSessionRepository))

		body, err := json.Marshal(requests.Login{Email: "dentist@example.com", Password: "secret123"})
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var sessionCookie *http.Cookie
		for _, cookie := range recorder.Result().Cookies() {
			if cookie.Name == constvars.SessionCookieName {
				sessionCookie = cookie
			}
		}
		require.NotNil(t, sessionCookie, "login must set the session cookie")
		assert.Equal(t, "session-abc", sessionCookie.Value)
		assert.True(t, sessionCookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, sessionCookie.SameSite)
		assert.Equal(t, 86400, sessionCookie.MaxAge)
	})

	t.Run("Rejects Invalid Payload", func(t *testing.T) {
		mockUsecase := new(MockAuthUsecase)
		router, _ := testRouter(mockUsecase, new(MockSessionRepository))

		body, err := json.Marshal(requests.Login{Email: "not-an-email", Password: "secret123"})
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockUsecase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestAuthRouter_Me(t *testing.T) {
	t.Run("Cookie Resolves Session", func(t *testing.T) {
		sessionRepo := new(MockSessionRepository)
		sessionRepo.On("GetSession", mock.Anything, "session-abc").Return(&models.Session{UserID: 7}, nil)

		mockUsecase := new(MockAuthUsecase)
		mockUsecase.On("CurrentUser", mock.Anything, "session-abc").Return(&models.User{ID: 7, Email: "dentist@example.com"}, nil)

		router, _ := testRouter(mockUsecase, sessionRepo)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		request.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "session-abc"})
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var user models.User
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&user))
		assert.Equal(t, "dentist@example.com", user.Email)
	})

	t.Run("Bearer Token Resolves Same Session", func(t *testing.T) {
		sessionRepo := new(MockSessionRepository)
		sessionRepo.On("GetSession", mock.Anything, "session-abc").Return(&models.Session{UserID: 7}, nil)

		mockUsecase := new(MockAuthUsecase)
		mockUsecase.On("CurrentUser", mock.Anything, "session-abc").Return(&models.User{ID: 7, Email: "dentist@example.com"}, nil)

		router, internalConfig := testRouter(mockUsecase, sessionRepo)

		token, err := utils.GenerateSessionJWT("session-abc", internalConfig.JWT.Secret, internalConfig.JWT.ExpTimeInHour)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		request.Header.Set(constvars.HeaderAuthorization, constvars.BearerSchema+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Missing Credentials Rejected", func(t *testing.T) {
		router, _ := testRouter(new(MockAuthUsecase), new(MockSessionRepository))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
