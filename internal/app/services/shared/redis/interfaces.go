package redis

import (
	"context"

	"dentaldesk-service/internal/app/models"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.Session) (string, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
