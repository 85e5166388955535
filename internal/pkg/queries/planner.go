package queries

const plannerColumns = `
	id, patient_id, title, description, planned_date, completed_date,
	status, priority, created_at, updated_at
`

const (
	GetPlannersByPatientID = `
		SELECT ` + plannerColumns + `
		FROM record_planners
		WHERE patient_id = $1
		ORDER BY planned_date NULLS LAST, id
	`

	GetPlannerByID = `
		SELECT ` + plannerColumns + `
		FROM record_planners
		WHERE id = $1
	`

	GetUpcomingPlannedPlanners = `
		SELECT ` + plannerColumns + `
		FROM record_planners
		WHERE status = 'planned'
		  AND planned_date IS NOT NULL
		  AND planned_date BETWEEN $1 AND $2
		ORDER BY planned_date
	`

	GetUpcomingPlannedPlannersByUserID = `
		SELECT ` + plannerColumns + `
		FROM record_planners
		WHERE status = 'planned'
		  AND planned_date IS NOT NULL
		  AND planned_date BETWEEN $2 AND $3
		  AND patient_id IN (SELECT id FROM patients WHERE user_id = $1)
		ORDER BY planned_date
	`

	InsertPlanner = `
		INSERT INTO record_planners (
			patient_id, title, description, planned_date, status, priority
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + plannerColumns + `
	`

	UpdatePlanner = `
		UPDATE record_planners
		SET title = $2, description = $3, planned_date = $4, completed_date = $5,
			status = $6, priority = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + plannerColumns + `
	`

	DeletePlanner = `
		DELETE FROM record_planners
		WHERE id = $1
	`
)
