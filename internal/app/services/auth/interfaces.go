package auth

import (
	"context"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/dto/requests"
	"dentaldesk-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	SignUp(ctx context.Context, request *requests.SignUp) (*models.User, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sessionID string) (*models.User, error)
	DeleteAccount(ctx context.Context, sessionID string) error
}
