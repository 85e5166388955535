package recordstore

import (
	"context"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/dto/requests"
)

// RemoteAPI is the slice of the practice API the store depends on.
// *api.Client satisfies it.
type RemoteAPI interface {
	ListPatientsByUser(ctx context.Context, userID int) ([]models.Patient, error)
	CreatePatient(ctx context.Context, userID int) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID int) error
	GetBiodata(ctx context.Context, patientID int) (*models.PatientBiodata, error)
	CreateBiodata(ctx context.Context, request *requests.CreateBiodata) (*models.PatientBiodata, error)
	ListVisits(ctx context.Context, patientID int) ([]models.Visit, error)
	ListPlanners(ctx context.Context, patientID int) ([]models.RecordPlanner, error)
}
