package patients

import (
	"context"
	"database/sql"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type biodataPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewBiodataPostgresRepository(db *sql.DB, logger *zap.Logger) BiodataRepository {
	return &biodataPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *biodataPostgresRepository) FindByPatientID(ctx context.Context, patientID int) (*models.PatientBiodata, error) {
	row := r.DB.QueryRowContext(ctx, queries.GetBiodataByPatientID, patientID)
	biodata, err := scanBiodata(row)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return biodata, nil
}

func (r *biodataPostgresRepository) Insert(ctx context.Context, biodata *models.PatientBiodata) (*models.PatientBiodata, error) {
	row := r.DB.QueryRowContext(ctx, queries.InsertBiodata,
		biodata.PatientID, biodata.FirstName, biodata.LastName, biodata.DateOfBirth,
		biodata.Gender, biodata.Phone, biodata.Email, biodata.Address, biodata.Occupation,
		biodata.EmergencyContactName, biodata.EmergencyContactPhone,
		biodata.MedicalHistory, biodata.Allergies, biodata.Medications,
		biodata.PreviousSurgeries, biodata.FamilyMedicalHistory,
		biodata.PreviousDentalTreatments, biodata.GumDiseaseHistory,
		biodata.DentalVisitFrequency, biodata.OralHygieneHabits,
		biodata.DentalTraumaHistory, biodata.SmokingTobaccoUse,
		biodata.AlcoholConsumption, biodata.DietHabits,
		biodata.InsuranceProvider, biodata.InsurancePolicyNumber, biodata.ConsentForms,
	)
	created, err := scanBiodata(row)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return created, nil
}

func (r *biodataPostgresRepository) Update(ctx context.Context, biodata *models.PatientBiodata) (*models.PatientBiodata, error) {
	row := r.DB.QueryRowContext(ctx, queries.UpdateBiodataByPatientID,
		biodata.PatientID, biodata.FirstName, biodata.LastName, biodata.DateOfBirth,
		biodata.Gender, biodata.Phone, biodata.Email, biodata.Address, biodata.Occupation,
		biodata.EmergencyContactName, biodata.EmergencyContactPhone,
		biodata.MedicalHistory, biodata.Allergies, biodata.Medications,
		biodata.PreviousSurgeries, biodata.FamilyMedicalHistory,
		biodata.PreviousDentalTreatments, biodata.GumDiseaseHistory,
		biodata.DentalVisitFrequency, biodata.OralHygieneHabits,
		biodata.DentalTraumaHistory, biodata.SmokingTobaccoUse,
		biodata.AlcoholConsumption, biodata.DietHabits,
		biodata.InsuranceProvider, biodata.InsurancePolicyNumber, biodata.ConsentForms,
	)
	updated, err := scanBiodata(row)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrBiodataNotFound(err)
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return updated, nil
}

func scanBiodata(row *sql.Row) (*models.PatientBiodata, error) {
	var b models.PatientBiodata
	err := row.Scan(
		&b.ID, &b.PatientID, &b.FirstName, &b.LastName, &b.DateOfBirth,
		&b.Gender, &b.Phone, &b.Email, &b.Address, &b.Occupation,
		&b.EmergencyContactName, &b.EmergencyContactPhone,
		&b.MedicalHistory, &b.Allergies, &b.Medications,
		&b.PreviousSurgeries, &b.FamilyMedicalHistory,
		&b.PreviousDentalTreatments, &b.GumDiseaseHistory,
		&b.DentalVisitFrequency, &b.OralHygieneHabits,
		&b.DentalTraumaHistory, &b.SmokingTobaccoUse,
		&b.AlcoholConsumption, &b.DietHabits,
		&b.InsuranceProvider, &b.InsurancePolicyNumber, &b.ConsentForms,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
