package requests

type CreatePatient struct {
	UserID int `json:"user_id" validate:"required,gt=0"`
}

// CreateBiodata mirrors the intake form. Optional fields are pointers so a
// blank submission stays an explicit absence end to end.
type CreateBiodata struct {
	PatientID                int     `json:"patient_id" validate:"required,gt=0"`
	FirstName                string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName                 string  `json:"last_name" validate:"required,min=1,max=100"`
	DateOfBirth              *string `json:"date_of_birth"`
	Gender                   *string `json:"gender"`
	Phone                    *string `json:"phone"`
	Email                    *string `json:"email"`
	Address                  *string `json:"address"`
	Occupation               *string `json:"occupation"`
	EmergencyContactName     *string `json:"emergency_contact_name"`
	EmergencyContactPhone    *string `json:"emergency_contact_phone"`
	MedicalHistory           *string `json:"medical_history"`
	Allergies                *string `json:"allergies"`
	Medications              *string `json:"medications"`
	PreviousSurgeries        *string `json:"previous_surgeries"`
	FamilyMedicalHistory     *string `json:"family_medical_history"`
	PreviousDentalTreatments *string `json:"previous_dental_treatments"`
	GumDiseaseHistory        *string `json:"gum_disease_history"`
	DentalVisitFrequency     *string `json:"dental_visit_frequency"`
	OralHygieneHabits        *string `json:"oral_hygiene_habits"`
	DentalTraumaHistory      *string `json:"dental_trauma_history"`
	SmokingTobaccoUse        *string `json:"smoking_tobacco_use"`
	AlcoholConsumption       *string `json:"alcohol_consumption"`
	DietHabits               *string `json:"diet_habits"`
	InsuranceProvider        *string `json:"insurance_provider"`
	InsurancePolicyNumber    *string `json:"insurance_policy_number"`
	ConsentForms             *string `json:"consent_forms"`
}

// UpdateBiodata carries only the fields the caller wants changed.
type UpdateBiodata struct {
	FirstName                *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName                 *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	DateOfBirth              *string `json:"date_of_birth"`
	Gender                   *string `json:"gender"`
	Phone                    *string `json:"phone"`
	Email                    *string `json:"email"`
	Address                  *string `json:"address"`
	Occupation               *string `json:"occupation"`
	EmergencyContactName     *string `json:"emergency_contact_name"`
	EmergencyContactPhone    *string `json:"emergency_contact_phone"`
	MedicalHistory           *string `json:"medical_history"`
	Allergies                *string `json:"allergies"`
	Medications              *string `json:"medications"`
	PreviousSurgeries        *string `json:"previous_surgeries"`
	FamilyMedicalHistory     *string `json:"family_medical_history"`
	PreviousDentalTreatments *string `json:"previous_dental_treatments"`
	GumDiseaseHistory        *string `json:"gum_disease_history"`
	DentalVisitFrequency     *string `json:"dental_visit_frequency"`
	OralHygieneHabits        *string `json:"oral_hygiene_habits"`
	DentalTraumaHistory      *string `json:"dental_trauma_history"`
	SmokingTobaccoUse        *string `json:"smoking_tobacco_use"`
	AlcoholConsumption       *string `json:"alcohol_consumption"`
	DietHabits               *string `json:"diet_habits"`
	InsuranceProvider        *string `json:"insurance_provider"`
	InsurancePolicyNumber    *string `json:"insurance_policy_number"`
	ConsentForms             *string `json:"consent_forms"`
}

type CreateVisit struct {
	PatientID          int     `json:"patient_id" validate:"required,gt=0"`
	VisitDate          *string `json:"visit_date"`
	VisitType          *string `json:"visit_type"`
	ChiefComplaint     *string `json:"chief_complaint"`
	ExaminationNotes   *string `json:"examination_notes"`
	Diagnosis          *string `json:"diagnosis"`
	TreatmentPlan      *string `json:"treatment_plan"`
	TreatmentPerformed *string `json:"treatment_performed"`
	NextAppointment    *string `json:"next_appointment"`
}

type UpdateVisit struct {
	VisitDate          *string `json:"visit_date"`
	VisitType          *string `json:"visit_type"`
	ChiefComplaint     *string `json:"chief_complaint"`
	ExaminationNotes   *string `json:"examination_notes"`
	Diagnosis          *string `json:"diagnosis"`
	TreatmentPlan      *string `json:"treatment_plan"`
	TreatmentPerformed *string `json:"treatment_performed"`
	NextAppointment    *string `json:"next_appointment"`
}

type CreateRecordPlanner struct {
	PatientID   int     `json:"patient_id" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description"`
	PlannedDate *string `json:"planned_date"`
	Status      string  `json:"status" validate:"omitempty,planner_status"`
	Priority    *string `json:"priority"`
}

type UpdateRecordPlanner struct {
	Title         *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description   *string `json:"description"`
	PlannedDate   *string `json:"planned_date"`
	CompletedDate *string `json:"completed_date"`
	Status        *string `json:"status" validate:"omitempty,planner_status"`
	Priority      *string `json:"priority"`
}
