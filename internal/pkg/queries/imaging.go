package queries

const (
	GetIntraoralPicturesByPatientID = `
		SELECT id, patient_id, image_url, image_path, description, picture_type,
			taken_date, created_at
		FROM intraoral_pictures
		WHERE patient_id = $1
		ORDER BY taken_date DESC
	`

	GetIntraoralPictureByID = `
		SELECT id, patient_id, image_url, image_path, description, picture_type,
			taken_date, created_at
		FROM intraoral_pictures
		WHERE id = $1
	`

	InsertIntraoralPicture = `
		INSERT INTO intraoral_pictures (patient_id, image_url, image_path, description, picture_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, patient_id, image_url, image_path, description, picture_type,
			taken_date, created_at
	`

	DeleteIntraoralPicture = `
		DELETE FROM intraoral_pictures
		WHERE id = $1
	`

	GetXRaysByPatientID = `
		SELECT id, patient_id, image_url, image_path, xray_type, description,
			taken_date, created_at
		FROM xrays
		WHERE patient_id = $1
		ORDER BY taken_date DESC
	`

	GetXRayByID = `
		SELECT id, patient_id, image_url, image_path, xray_type, description,
			taken_date, created_at
		FROM xrays
		WHERE id = $1
	`

	InsertXRay = `
		INSERT INTO xrays (patient_id, image_url, image_path, xray_type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, patient_id, image_url, image_path, xray_type, description,
			taken_date, created_at
	`

	DeleteXRay = `
		DELETE FROM xrays
		WHERE id = $1
	`
)
