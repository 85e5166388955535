package queries

const biodataColumns = `
	id, patient_id, first_name, last_name, date_of_birth, gender, phone, email,
	address, occupation, emergency_contact_name, emergency_contact_phone,
	medical_history, allergies, medications, previous_surgeries,
	family_medical_history, previous_dental_treatments, gum_disease_history,
	dental_visit_frequency, oral_hygiene_habits, dental_trauma_history,
	smoking_tobacco_use, alcohol_consumption, diet_habits,
	insurance_provider, insurance_policy_number, consent_forms,
	created_at, updated_at
`

const (
	GetBiodataByPatientID = `
		SELECT ` + biodataColumns + `
		FROM patient_biodata
		WHERE patient_id = $1
	`

	InsertBiodata = `
		INSERT INTO patient_biodata (
			patient_id, first_name, last_name, date_of_birth, gender, phone, email,
			address, occupation, emergency_contact_name, emergency_contact_phone,
			medical_history, allergies, medications, previous_surgeries,
			family_medical_history, previous_dental_treatments, gum_disease_history,
			dental_visit_frequency, oral_hygiene_habits, dental_trauma_history,
			smoking_tobacco_use, alcohol_consumption, diet_habits,
			insurance_provider, insurance_policy_number, consent_forms
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
		)
		RETURNING ` + biodataColumns + `
	`

	UpdateBiodataByPatientID = `
		UPDATE patient_biodata
		SET first_name = $2, last_name = $3, date_of_birth = $4, gender = $5,
			phone = $6, email = $7, address = $8, occupation = $9,
			emergency_contact_name = $10, emergency_contact_phone = $11,
			medical_history = $12, allergies = $13, medications = $14,
			previous_surgeries = $15, family_medical_history = $16,
			previous_dental_treatments = $17, gum_disease_history = $18,
			dental_visit_frequency = $19, oral_hygiene_habits = $20,
			dental_trauma_history = $21, smoking_tobacco_use = $22,
			alcohol_consumption = $23, diet_habits = $24,
			insurance_provider = $25, insurance_policy_number = $26,
			consent_forms = $27, updated_at = NOW()
		WHERE patient_id = $1
		RETURNING ` + biodataColumns + `
	`

	DeleteBiodataByPatientID = `
		DELETE FROM patient_biodata
		WHERE patient_id = $1
	`
)
