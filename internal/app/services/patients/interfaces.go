package patients

import (
	"context"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/dto/requests"
)

type PatientRepository interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID int) (*models.Patient, error)
	FindByUserID(ctx context.Context, userID int) ([]models.Patient, error)
	Insert(ctx context.Context, userID int) (*models.Patient, error)
	Delete(ctx context.Context, patientID int) error
}

type BiodataRepository interface {
	FindByPatientID(ctx context.Context, patientID int) (*models.PatientBiodata, error)
	Insert(ctx context.Context, biodata *models.PatientBiodata) (*models.PatientBiodata, error)
	Update(ctx context.Context, biodata *models.PatientBiodata) (*models.PatientBiodata, error)
}

type VisitRepository interface {
	FindByPatientID(ctx context.Context, patientID int) ([]models.Visit, error)
	FindByID(ctx context.Context, visitID int) (*models.Visit, error)
	Insert(ctx context.Context, visit *models.Visit) (*models.Visit, error)
	Update(ctx context.Context, visit *models.Visit) (*models.Visit, error)
	Delete(ctx context.Context, visitID int) error
}

type PlannerRepository interface {
	FindByPatientID(ctx context.Context, patientID int) ([]models.RecordPlanner, error)
	FindByID(ctx context.Context, plannerID int) (*models.RecordPlanner, error)
	FindUpcomingPlanned(ctx context.Context, from, to string) ([]models.RecordPlanner, error)
	FindUpcomingPlannedByUser(ctx context.Context, userID int, from, to string) ([]models.RecordPlanner, error)
	Insert(ctx context.Context, planner *models.RecordPlanner) (*models.RecordPlanner, error)
	Update(ctx context.Context, planner *models.RecordPlanner) (*models.RecordPlanner, error)
	Delete(ctx context.Context, plannerID int) error
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	GetPatient(ctx context.Context, patientID int) (*models.Patient, error)
	ListPatientsByUser(ctx context.Context, userID int) ([]models.Patient, error)
	DeletePatient(ctx context.Context, patientID int) error

	CreateBiodata(ctx context.Context, request *requests.CreateBiodata) (*models.PatientBiodata, error)
	GetBiodata(ctx context.Context, patientID int) (*models.PatientBiodata, error)
	UpdateBiodata(ctx context.Context, patientID int, request *requests.UpdateBiodata) (*models.PatientBiodata, error)

	ListVisits(ctx context.Context, patientID int) ([]models.Visit, error)
	GetVisit(ctx context.Context, visitID int) (*models.Visit, error)
	CreateVisit(ctx context.Context, request *requests.CreateVisit) (*models.Visit, error)
	UpdateVisit(ctx context.Context, visitID int, request *requests.UpdateVisit) (*models.Visit, error)
	DeleteVisit(ctx context.Context, visitID int) error

	ListPlanners(ctx context.Context, patientID int) ([]models.RecordPlanner, error)
	CreatePlanner(ctx context.Context, request *requests.CreateRecordPlanner) (*models.RecordPlanner, error)
	UpdatePlanner(ctx context.Context, plannerID int, request *requests.UpdateRecordPlanner) (*models.RecordPlanner, error)
	DeletePlanner(ctx context.Context, plannerID int) error
}
