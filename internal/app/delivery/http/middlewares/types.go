package middlewares

import (
	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/services/shared/redis"

	"go.uber.org/zap"
)

type Middlewares struct {
	SessionRepository redis.SessionRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewMiddlewares(sessionRepository redis.SessionRepository, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}
