package redis

import (
	"context"
	"time"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client         *goredis.Client
	internalConfig *config.InternalConfig
}

func NewSessionRepository(client *goredis.Client, internalConfig *config.InternalConfig) SessionRepository {
	return &sessionRepository{
		client:         client,
		internalConfig: internalConfig,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	sessionID := utils.GenerateSessionID()

	jsonValue, err := json.Marshal(session)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	ttl := time.Duration(r.internalConfig.Session.TTLInSeconds) * time.Second
	err = r.client.Set(ctx, constvars.SessionRedisPrefix+sessionID, jsonValue, ttl).Err()
	if err != nil {
		return "", exceptions.ErrRedisSet(err)
	}

	return sessionID, nil
}

func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.client.Get(ctx, constvars.SessionRedisPrefix+sessionID).Result()
	if err == goredis.Nil {
		return nil, exceptions.ErrSessionNotFound(err)
	} else if err != nil {
		return nil, exceptions.ErrRedisGetNoData(err, constvars.SessionRedisPrefix+sessionID)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(data), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	err := r.client.Del(ctx, constvars.SessionRedisPrefix+sessionID).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
