package config

type (
	InternalConfig struct {
		App      App
		JWT      JWT
		Session  Session
		Reminder Reminder
		Minio    AppMinio
	}
	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		FrontendOrigin             string
		RabbitMQReminderQueue      string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		ImageMaxUploadSizeInMB     int64
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
	Session struct {
		TTLInSeconds int
	}
	Reminder struct {
		LookaheadInDays   int
		IntervalInMinutes int
		EmailsPerSecond   int
	}
	AppMinio struct {
		PresignedURLExpiryInHours int
	}
)
