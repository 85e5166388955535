package queries

const visitColumns = `
	id, patient_id, visit_date, visit_type, chief_complaint, examination_notes,
	diagnosis, treatment_plan, treatment_performed, next_appointment,
	created_at, updated_at
`

const (
	GetVisitsByPatientID = `
		SELECT ` + visitColumns + `
		FROM visits
		WHERE patient_id = $1
		ORDER BY visit_date DESC
	`

	GetVisitByID = `
		SELECT ` + visitColumns + `
		FROM visits
		WHERE id = $1
	`

	InsertVisit = `
		INSERT INTO visits (
			patient_id, visit_date, visit_type, chief_complaint, examination_notes,
			diagnosis, treatment_plan, treatment_performed, next_appointment
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + visitColumns + `
	`

	UpdateVisit = `
		UPDATE visits
		SET visit_date = $2, visit_type = $3, chief_complaint = $4,
			examination_notes = $5, diagnosis = $6, treatment_plan = $7,
			treatment_performed = $8, next_appointment = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + visitColumns + `
	`

	DeleteVisit = `
		DELETE FROM visits
		WHERE id = $1
	`
)
