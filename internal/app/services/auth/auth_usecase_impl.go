package auth

import (
	"context"
	"fmt"
	"time"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/app/services/shared/redis"
	"dentaldesk-service/internal/app/services/users"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/dto/requests"
	"dentaldesk-service/internal/pkg/dto/responses"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository    users.UserRepository
	SessionRepository redis.SessionRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	userRepository users.UserRepository,
	sessionRepository redis.SessionRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		UserRepository:    userRepository,
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *authUsecase) SignUp(ctx context.Context, request *requests.SignUp) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.SignUp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.SignUp error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s already registered", request.Email))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	role := request.Role
	if role == "" {
		role = constvars.RoleUser
	}

	user := &models.User{
		Firstname: request.Firstname,
		Lastname:  request.Lastname,
		Email:     request.Email,
		Password:  hashedPassword,
		Role:      role,
	}

	userID, err := uc.UserRepository.Insert(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.SignUp error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	user.ID = userID

	uc.Log.Info("authUsecase.SignUp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(fmt.Errorf("no user for email %s", request.Email))
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(fmt.Errorf("password mismatch for user %d", user.ID))
	}

	session := &models.Session{UserID: user.ID, CreatedAt: time.Now().UTC()}
	sessionID, err := uc.SessionRepository.CreateSession(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Login{User: *user, SessionID: sessionID}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.SessionRepository.DeleteSession(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *authUsecase) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.Log.Error("authUsecase.CurrentUser session points at missing user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUserIDKey, session.UserID),
		)
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("user %d not found", session.UserID))
	}

	return user, nil
}

func (uc *authUsecase) DeleteAccount(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.DeleteAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	err = uc.UserRepository.Delete(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("authUsecase.DeleteAccount error deleting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return err
	}

	return uc.SessionRepository.DeleteSession(ctx, sessionID)
}
