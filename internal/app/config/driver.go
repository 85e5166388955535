package config

type (
	DriverConfig struct {
		Postgres Postgres
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
		Logger   Logger
	}
	Postgres struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
		SSLMode  string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
