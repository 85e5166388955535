package models

import "time"

// Patient is a bare identity record. Everything descriptive lives in
// PatientBiodata, which may not exist.
type Patient struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PatientBiodata struct {
	ID                       int        `json:"id"`
	PatientID                int        `json:"patient_id"`
	FirstName                string     `json:"first_name"`
	LastName                 string     `json:"last_name"`
	DateOfBirth              *time.Time `json:"date_of_birth"`
	Gender                   *string    `json:"gender"`
	Phone                    *string    `json:"phone"`
	Email                    *string    `json:"email"`
	Address                  *string    `json:"address"`
	Occupation               *string    `json:"occupation"`
	EmergencyContactName     *string    `json:"emergency_contact_name"`
	EmergencyContactPhone    *string    `json:"emergency_contact_phone"`
	MedicalHistory           *string    `json:"medical_history"`
	Allergies                *string    `json:"allergies"`
	Medications              *string    `json:"medications"`
	PreviousSurgeries        *string    `json:"previous_surgeries"`
	FamilyMedicalHistory     *string    `json:"family_medical_history"`
	PreviousDentalTreatments *string    `json:"previous_dental_treatments"`
	GumDiseaseHistory        *string    `json:"gum_disease_history"`
	DentalVisitFrequency     *string    `json:"dental_visit_frequency"`
	OralHygieneHabits        *string    `json:"oral_hygiene_habits"`
	DentalTraumaHistory      *string    `json:"dental_trauma_history"`
	SmokingTobaccoUse        *string    `json:"smoking_tobacco_use"`
	AlcoholConsumption       *string    `json:"alcohol_consumption"`
	DietHabits               *string    `json:"diet_habits"`
	InsuranceProvider        *string    `json:"insurance_provider"`
	InsurancePolicyNumber    *string    `json:"insurance_policy_number"`
	ConsentForms             *string    `json:"consent_forms"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

type Visit struct {
	ID                 int        `json:"id"`
	PatientID          int        `json:"patient_id"`
	VisitDate          time.Time  `json:"visit_date"`
	VisitType          *string    `json:"visit_type"`
	ChiefComplaint     *string    `json:"chief_complaint"`
	ExaminationNotes   *string    `json:"examination_notes"`
	Diagnosis          *string    `json:"diagnosis"`
	TreatmentPlan      *string    `json:"treatment_plan"`
	TreatmentPerformed *string    `json:"treatment_performed"`
	NextAppointment    *time.Time `json:"next_appointment"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type RecordPlanner struct {
	ID            int        `json:"id"`
	PatientID     int        `json:"patient_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	PlannedDate   *time.Time `json:"planned_date"`
	CompletedDate *time.Time `json:"completed_date"`
	Status        string     `json:"status"`
	Priority      *string    `json:"priority"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type IntraoralPicture struct {
	ID          int       `json:"id"`
	PatientID   int       `json:"patient_id"`
	ImageURL    string    `json:"image_url"`
	ImagePath   *string   `json:"image_path"`
	Description *string   `json:"description"`
	PictureType *string   `json:"picture_type"`
	TakenDate   time.Time `json:"taken_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type XRay struct {
	ID          int       `json:"id"`
	PatientID   int       `json:"patient_id"`
	ImageURL    string    `json:"image_url"`
	ImagePath   *string   `json:"image_path"`
	XRayType    *string   `json:"xray_type"`
	Description *string   `json:"description"`
	TakenDate   time.Time `json:"taken_date"`
	CreatedAt   time.Time `json:"created_at"`
}
