package patients

import (
	"context"
	"database/sql"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type patientPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewPatientPostgresRepository(db *sql.DB, logger *zap.Logger) PatientRepository {
	return &patientPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *patientPostgresRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllPatients)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanPatients(rows)
}

func (r *patientPostgresRepository) FindByID(ctx context.Context, patientID int) (*models.Patient, error) {
	var patient models.Patient
	err := r.DB.QueryRowContext(ctx, queries.GetPatientByID, patientID).
		Scan(&patient.ID, &patient.UserID, &patient.CreatedAt, &patient.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &patient, nil
}

func (r *patientPostgresRepository) FindByUserID(ctx context.Context, userID int) ([]models.Patient, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetPatientsByUserID, userID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanPatients(rows)
}

func (r *patientPostgresRepository) Insert(ctx context.Context, userID int) (*models.Patient, error) {
	var patient models.Patient
	err := r.DB.QueryRowContext(ctx, queries.InsertPatient, userID).
		Scan(&patient.ID, &patient.UserID, &patient.CreatedAt, &patient.UpdatedAt)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return &patient, nil
}

func (r *patientPostgresRepository) Delete(ctx context.Context, patientID int) error {
	result, err := r.DB.ExecContext(ctx, queries.DeletePatient, patientID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrPatientNotFound(sql.ErrNoRows)
	}
	return nil
}

func scanPatients(rows *sql.Rows) ([]models.Patient, error) {
	patients := []models.Patient{}
	for rows.Next() {
		var patient models.Patient
		if err := rows.Scan(&patient.ID, &patient.UserID, &patient.CreatedAt, &patient.UpdatedAt); err != nil {
			return nil, exceptions.ErrPostgresDBIterateRows(err)
		}
		patients = append(patients, patient)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateRows(err)
	}
	return patients, nil
}
