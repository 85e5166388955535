package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentaldesk-service/cmd/migration"
	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/delivery/http/middlewares"
	"dentaldesk-service/internal/app/delivery/http/routers"
	"dentaldesk-service/internal/app/drivers/database"
	"dentaldesk-service/internal/app/drivers/logger"
	"dentaldesk-service/internal/app/drivers/mailer"
	"dentaldesk-service/internal/app/drivers/messaging"
	driverstorage "dentaldesk-service/internal/app/drivers/storage"
	"dentaldesk-service/internal/app/services/auth"
	"dentaldesk-service/internal/app/services/imaging"
	"dentaldesk-service/internal/app/services/patients"
	"dentaldesk-service/internal/app/services/reminders"
	"dentaldesk-service/internal/app/services/shared/redis"
	"dentaldesk-service/internal/app/services/shared/smtp"
	"dentaldesk-service/internal/app/services/shared/storage"
	"dentaldesk-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	migration.Run(postgresDB)

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := driverstorage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Postgres:       postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Redis sessions
	sessionRepository := redis.NewSessionRepository(redisClient, internalConfig)

	// Minio storage
	minioStorage := storage.NewMinioStorage(minioClient)
	if err := minioStorage.EnsureBucket(context.Background(), driverConfig.Minio.BucketName); err != nil {
		log.Fatalf("Failed to ensure minio bucket: %v", err)
	}

	// SMTP
	smtpClient := mailer.NewSMTPClient(driverConfig)
	smtpService := smtp.NewSmtpService(smtpClient)

	// Middlewares
	mws := middlewares.NewMiddlewares(sessionRepository, internalConfig, zapLogger)
	chiRouter.Use(mws.RequestLogger(internalConfig.App, logrusLogger))

	// Users
	userRepository := users.NewUserPostgresRepository(postgresDB, zapLogger)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, sessionRepository, internalConfig, zapLogger)
	authController := auth.NewAuthController(authUsecase, internalConfig, zapLogger)

	// Imaging
	imagingRepository := imaging.NewImagingPostgresRepository(postgresDB, zapLogger)
	imagingUsecase := imaging.NewImagingUsecase(imagingRepository, minioStorage, internalConfig, driverConfig, zapLogger)
	imagingController := imaging.NewImagingController(imagingUsecase, internalConfig, zapLogger)

	// Patients
	patientRepository := patients.NewPatientPostgresRepository(postgresDB, zapLogger)
	biodataRepository := patients.NewBiodataPostgresRepository(postgresDB, zapLogger)
	visitRepository := patients.NewVisitPostgresRepository(postgresDB, zapLogger)
	plannerRepository := patients.NewPlannerPostgresRepository(postgresDB, zapLogger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, biodataRepository, visitRepository, plannerRepository, imagingUsecase, zapLogger)
	patientController := patients.NewPatientController(patientUsecase, zapLogger)

	// Reminders
	reminderQueue := reminders.NewReminderQueueService(rabbitMQ, internalConfig, zapLogger)
	reminderUsecase := reminders.NewReminderUsecase(plannerRepository, biodataRepository, reminderQueue, internalConfig, zapLogger)
	reminderController := reminders.NewReminderController(reminderUsecase, zapLogger)

	reminderWorker := reminders.NewReminderWorker(reminderUsecase, reminderQueue, smtpService, internalConfig, zapLogger)
	reminderWorker.Start()
	bootstrap.ReminderWorkerStop = reminderWorker.Stop

	routers.SetupRoutes(chiRouter, internalConfig, mws, authController, patientController, imagingController, reminderController)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}
