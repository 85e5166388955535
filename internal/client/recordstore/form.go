package recordstore

import (
	"fmt"
	"time"

	"dentaldesk-service/internal/pkg/dto/requests"
	"dentaldesk-service/internal/pkg/utils"
)

// Canonical intake form field names. Text, date, and single-select inputs all
// write through the same set-by-name mutation.
const (
	FieldFirstName                = "first_name"
	FieldLastName                 = "last_name"
	FieldDateOfBirth              = "date_of_birth"
	FieldGender                   = "gender"
	FieldPhone                    = "phone"
	FieldEmail                    = "email"
	FieldAddress                  = "address"
	FieldOccupation               = "occupation"
	FieldEmergencyContactName     = "emergency_contact_name"
	FieldEmergencyContactPhone    = "emergency_contact_phone"
	FieldMedicalHistory           = "medical_history"
	FieldAllergies                = "allergies"
	FieldMedications              = "medications"
	FieldPreviousSurgeries        = "previous_surgeries"
	FieldFamilyMedicalHistory     = "family_medical_history"
	FieldPreviousDentalTreatments = "previous_dental_treatments"
	FieldGumDiseaseHistory        = "gum_disease_history"
	FieldDentalVisitFrequency     = "dental_visit_frequency"
	FieldOralHygieneHabits        = "oral_hygiene_habits"
	FieldDentalTraumaHistory      = "dental_trauma_history"
	FieldSmokingTobaccoUse        = "smoking_tobacco_use"
	FieldAlcoholConsumption       = "alcohol_consumption"
	FieldDietHabits               = "diet_habits"
	FieldInsuranceProvider        = "insurance_provider"
	FieldInsurancePolicyNumber    = "insurance_policy_number"
	FieldConsentForms             = "consent_forms"
)

var formFieldNames = []string{
	FieldFirstName,
	FieldLastName,
	FieldDateOfBirth,
	FieldGender,
	FieldPhone,
	FieldEmail,
	FieldAddress,
	FieldOccupation,
	FieldEmergencyContactName,
	FieldEmergencyContactPhone,
	FieldMedicalHistory,
	FieldAllergies,
	FieldMedications,
	FieldPreviousSurgeries,
	FieldFamilyMedicalHistory,
	FieldPreviousDentalTreatments,
	FieldGumDiseaseHistory,
	FieldDentalVisitFrequency,
	FieldOralHygieneHabits,
	FieldDentalTraumaHistory,
	FieldSmokingTobaccoUse,
	FieldAlcoholConsumption,
	FieldDietHabits,
	FieldInsuranceProvider,
	FieldInsurancePolicyNumber,
	FieldConsentForms,
}

// form is the flat mutable record behind the creation modal. Every field is a
// plain string; absence is decided at payload-build time, not at input time.
type form struct {
	fields map[string]string
}

func newForm() form {
	f := form{fields: make(map[string]string, len(formFieldNames))}
	f.reset()
	return f
}

func (f *form) set(name, value string) error {
	if _, ok := f.fields[name]; !ok {
		return fmt.Errorf("unknown form field %q", name)
	}
	f.fields[name] = value
	return nil
}

func (f *form) get(name string) string {
	return f.fields[name]
}

func (f *form) reset() {
	for _, name := range formFieldNames {
		f.fields[name] = ""
	}
}

// payload maps the form to a biodata create request. Blank optional fields
// become explicit absences so an empty input never reaches the wire as an
// empty string, and the date of birth collapses to midnight UTC of its day.
func (f *form) payload(patientID int) (*requests.CreateBiodata, error) {
	dateOfBirth, err := utils.NormalizeDateOfBirth(f.get(FieldDateOfBirth))
	if err != nil {
		return nil, err
	}

	request := &requests.CreateBiodata{
		PatientID:                patientID,
		FirstName:                f.get(FieldFirstName),
		LastName:                 f.get(FieldLastName),
		Gender:                   utils.OptionalString(f.get(FieldGender)),
		Phone:                    utils.OptionalString(f.get(FieldPhone)),
		Email:                    utils.OptionalString(f.get(FieldEmail)),
		Address:                  utils.OptionalString(f.get(FieldAddress)),
		Occupation:               utils.OptionalString(f.get(FieldOccupation)),
		EmergencyContactName:     utils.OptionalString(f.get(FieldEmergencyContactName)),
		EmergencyContactPhone:    utils.OptionalString(f.get(FieldEmergencyContactPhone)),
		MedicalHistory:           utils.OptionalString(f.get(FieldMedicalHistory)),
		Allergies:                utils.OptionalString(f.get(FieldAllergies)),
		Medications:              utils.OptionalString(f.get(FieldMedications)),
		PreviousSurgeries:        utils.OptionalString(f.get(FieldPreviousSurgeries)),
		FamilyMedicalHistory:     utils.OptionalString(f.get(FieldFamilyMedicalHistory)),
		PreviousDentalTreatments: utils.OptionalString(f.get(FieldPreviousDentalTreatments)),
		GumDiseaseHistory:        utils.OptionalString(f.get(FieldGumDiseaseHistory)),
		DentalVisitFrequency:     utils.OptionalString(f.get(FieldDentalVisitFrequency)),
		OralHygieneHabits:        utils.OptionalString(f.get(FieldOralHygieneHabits)),
		DentalTraumaHistory:      utils.OptionalString(f.get(FieldDentalTraumaHistory)),
		SmokingTobaccoUse:        utils.OptionalString(f.get(FieldSmokingTobaccoUse)),
		AlcoholConsumption:       utils.OptionalString(f.get(FieldAlcoholConsumption)),
		DietHabits:               utils.OptionalString(f.get(FieldDietHabits)),
		InsuranceProvider:        utils.OptionalString(f.get(FieldInsuranceProvider)),
		InsurancePolicyNumber:    utils.OptionalString(f.get(FieldInsurancePolicyNumber)),
		ConsentForms:             utils.OptionalString(f.get(FieldConsentForms)),
	}
	if dateOfBirth != nil {
		formatted := dateOfBirth.Format(time.RFC3339)
		request.DateOfBirth = &formatted
	}
	return request, nil
}
