package users

import (
	"context"

	"dentaldesk-service/internal/app/models"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID int) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (int, error)
	Delete(ctx context.Context, userID int) error
}
