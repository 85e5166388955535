package patients

import (
	"context"
	"database/sql"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type plannerPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewPlannerPostgresRepository(db *sql.DB, logger *zap.Logger) PlannerRepository {
	return &plannerPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *plannerPostgresRepository) FindByPatientID(ctx context.Context, patientID int) ([]models.RecordPlanner, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetPlannersByPatientID, patientID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanPlanners(rows)
}

func (r *plannerPostgresRepository) FindByID(ctx context.Context, plannerID int) (*models.RecordPlanner, error) {
	var p models.RecordPlanner
	err := scanPlanner(r.DB.QueryRowContext(ctx, queries.GetPlannerByID, plannerID), &p)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &p, nil
}

func (r *plannerPostgresRepository) FindUpcomingPlanned(ctx context.Context, from, to string) ([]models.RecordPlanner, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetUpcomingPlannedPlanners, from, to)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanPlanners(rows)
}

func (r *plannerPostgresRepository) FindUpcomingPlannedByUser(ctx context.Context, userID int, from, to string) ([]models.RecordPlanner, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetUpcomingPlannedPlannersByUserID, userID, from, to)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanPlanners(rows)
}

func (r *plannerPostgresRepository) Insert(ctx context.Context, planner *models.RecordPlanner) (*models.RecordPlanner, error) {
	var created models.RecordPlanner
	err := scanPlanner(r.DB.QueryRowContext(ctx, queries.InsertPlanner,
		planner.PatientID, planner.Title, planner.Description,
		planner.PlannedDate, planner.Status, planner.Priority,
	), &created)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return &created, nil
}

func (r *plannerPostgresRepository) Update(ctx context.Context, planner *models.RecordPlanner) (*models.RecordPlanner, error) {
	var updated models.RecordPlanner
	err := scanPlanner(r.DB.QueryRowContext(ctx, queries.UpdatePlanner,
		planner.ID, planner.Title, planner.Description, planner.PlannedDate,
		planner.CompletedDate, planner.Status, planner.Priority,
	), &updated)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrPlannerNotFound(err)
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return &updated, nil
}

func (r *plannerPostgresRepository) Delete(ctx context.Context, plannerID int) error {
	result, err := r.DB.ExecContext(ctx, queries.DeletePlanner, plannerID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrPlannerNotFound(sql.ErrNoRows)
	}
	return nil
}

func scanPlanner(scanner rowScanner, p *models.RecordPlanner) error {
	return scanner.Scan(
		&p.ID, &p.PatientID, &p.Title, &p.Description, &p.PlannedDate,
		&p.CompletedDate, &p.Status, &p.Priority, &p.CreatedAt, &p.UpdatedAt,
	)
}

func scanPlanners(rows *sql.Rows) ([]models.RecordPlanner, error) {
	planners := []models.RecordPlanner{}
	for rows.Next() {
		var p models.RecordPlanner
		if err := scanPlanner(rows, &p); err != nil {
			return nil, exceptions.ErrPostgresDBIterateRows(err)
		}
		planners = append(planners, p)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateRows(err)
	}
	return planners, nil
}
