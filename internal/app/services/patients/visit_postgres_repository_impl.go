package patients

import (
	"context"
	"database/sql"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type visitPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewVisitPostgresRepository(db *sql.DB, logger *zap.Logger) VisitRepository {
	return &visitPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *visitPostgresRepository) FindByPatientID(ctx context.Context, patientID int) ([]models.Visit, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetVisitsByPatientID, patientID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	visits := []models.Visit{}
	for rows.Next() {
		var v models.Visit
		if err := scanVisit(rows, &v); err != nil {
			return nil, exceptions.ErrPostgresDBIterateRows(err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateRows(err)
	}
	return visits, nil
}

func (r *visitPostgresRepository) FindByID(ctx context.Context, visitID int) (*models.Visit, error) {
	var v models.Visit
	err := scanVisitRow(r.DB.QueryRowContext(ctx, queries.GetVisitByID, visitID), &v)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &v, nil
}

func (r *visitPostgresRepository) Insert(ctx context.Context, visit *models.Visit) (*models.Visit, error) {
	var created models.Visit
	err := scanVisitRow(r.DB.QueryRowContext(ctx, queries.InsertVisit,
		visit.PatientID, visit.VisitDate, visit.VisitType, visit.ChiefComplaint,
		visit.ExaminationNotes, visit.Diagnosis, visit.TreatmentPlan,
		visit.TreatmentPerformed, visit.NextAppointment,
	), &created)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return &created, nil
}

func (r *visitPostgresRepository) Update(ctx context.Context, visit *models.Visit) (*models.Visit, error) {
	var updated models.Visit
	err := scanVisitRow(r.DB.QueryRowContext(ctx, queries.UpdateVisit,
		visit.ID, visit.VisitDate, visit.VisitType, visit.ChiefComplaint,
		visit.ExaminationNotes, visit.Diagnosis, visit.TreatmentPlan,
		visit.TreatmentPerformed, visit.NextAppointment,
	), &updated)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrVisitNotFound(err)
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return &updated, nil
}

func (r *visitPostgresRepository) Delete(ctx context.Context, visitID int) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteVisit, visitID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrVisitNotFound(sql.ErrNoRows)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVisit(scanner rowScanner, v *models.Visit) error {
	return scanner.Scan(
		&v.ID, &v.PatientID, &v.VisitDate, &v.VisitType, &v.ChiefComplaint,
		&v.ExaminationNotes, &v.Diagnosis, &v.TreatmentPlan,
		&v.TreatmentPerformed, &v.NextAppointment, &v.CreatedAt, &v.UpdatedAt,
	)
}

func scanVisitRow(row *sql.Row, v *models.Visit) error {
	return scanVisit(row, v)
}
