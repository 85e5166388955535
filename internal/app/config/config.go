package config

import (
	"dentaldesk-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			DbName:   utils.GetEnvString("POSTGRES_DB_NAME", "dentaldesk"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "dentaldesk-imaging"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "noreply@dentaldesk.local"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			FrontendOrigin:             utils.GetEnvString("APP_FRONTEND_ORIGIN", "http://localhost:5173"),
			RabbitMQReminderQueue:      utils.GetEnvString("APP_RABBITMQ_REMINDER_QUEUE", "dentaldesk-reminders"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			ImageMaxUploadSizeInMB:     utils.GetEnvInt64("APP_IMAGE_UPLOAD_MAX_SIZE_IN_MB", 8),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Session: Session{
			TTLInSeconds: utils.GetEnvInt("SESSION_TTL_IN_SECONDS", 86400),
		},
		Reminder: Reminder{
			LookaheadInDays:   utils.GetEnvInt("REMINDER_LOOKAHEAD_IN_DAYS", 3),
			IntervalInMinutes: utils.GetEnvInt("REMINDER_INTERVAL_IN_MINUTES", 60),
			EmailsPerSecond:   utils.GetEnvInt("REMINDER_EMAILS_PER_SECOND", 2),
		},
		Minio: AppMinio{
			PresignedURLExpiryInHours: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_IN_HOURS", 24),
		},
	}
}
