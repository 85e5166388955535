package queries

const (
	GetAllPatients = `
		SELECT id, user_id, created_at, updated_at
		FROM patients
		ORDER BY id
	`

	GetPatientsByUserID = `
		SELECT id, user_id, created_at, updated_at
		FROM patients
		WHERE user_id = $1
		ORDER BY id
	`

	GetPatientByID = `
		SELECT id, user_id, created_at, updated_at
		FROM patients
		WHERE id = $1
	`

	InsertPatient = `
		INSERT INTO patients (user_id)
		VALUES ($1)
		RETURNING id, user_id, created_at, updated_at
	`

	DeletePatient = `
		DELETE FROM patients
		WHERE id = $1
	`
)
