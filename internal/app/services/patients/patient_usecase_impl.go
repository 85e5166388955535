package patients

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/dto/requests"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ImagingCleaner removes a patient's stored image objects ahead of the row
// cascade. Row deletion itself rides on the schema's foreign keys.
type ImagingCleaner interface {
	RemovePatientObjects(ctx context.Context, patientID int) error
}

type patientUsecase struct {
	PatientRepository PatientRepository
	BiodataRepository BiodataRepository
	VisitRepository   VisitRepository
	PlannerRepository PlannerRepository
	ImagingCleaner    ImagingCleaner
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository PatientRepository,
	biodataRepository BiodataRepository,
	visitRepository VisitRepository,
	plannerRepository PlannerRepository,
	imagingCleaner ImagingCleaner,
	logger *zap.Logger,
) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		BiodataRepository: biodataRepository,
		VisitRepository:   visitRepository,
		PlannerRepository: plannerRepository,
		ImagingCleaner:    imagingCleaner,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, request.UserID),
	)

	patient, err := uc.PatientRepository.Insert(ctx, request.UserID)
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (uc *patientUsecase) GetPatient(ctx context.Context, patientID int) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %d not found", patientID))
	}
	return patient, nil
}

func (uc *patientUsecase) ListPatientsByUser(ctx context.Context, userID int) ([]models.Patient, error) {
	return uc.PatientRepository.FindByUserID(ctx, userID)
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)

	if uc.ImagingCleaner != nil {
		if err := uc.ImagingCleaner.RemovePatientObjects(ctx, patientID); err != nil {
			// Orphaned objects are preferable to a patient row that will not go away.
			uc.Log.Error("patientUsecase.DeletePatient error removing stored images",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingPatientIDKey, patientID),
				zap.Error(err),
			)
		}
	}

	return uc.PatientRepository.Delete(ctx, patientID)
}

func (uc *patientUsecase) CreateBiodata(ctx context.Context, request *requests.CreateBiodata) (*models.PatientBiodata, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreateBiodata called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, request.PatientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %d not found", request.PatientID))
	}

	existing, err := uc.BiodataRepository.FindByPatientID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrBiodataAlreadyExists(fmt.Errorf("biodata already exists for patient %d", request.PatientID))
	}

	dateOfBirth, err := utils.ParseOptionalTimestamp(request.DateOfBirth)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	biodata := &models.PatientBiodata{
		PatientID:                request.PatientID,
		FirstName:                request.FirstName,
		LastName:                 request.LastName,
		DateOfBirth:              dateOfBirth,
		Gender:                   request.Gender,
		Phone:                    request.Phone,
		Email:                    request.Email,
		Address:                  request.Address,
		Occupation:               request.Occupation,
		EmergencyContactName:     request.EmergencyContactName,
		EmergencyContactPhone:    request.EmergencyContactPhone,
		MedicalHistory:           request.MedicalHistory,
		Allergies:                request.Allergies,
		Medications:              request.Medications,
		PreviousSurgeries:        request.PreviousSurgeries,
		FamilyMedicalHistory:     request.FamilyMedicalHistory,
		PreviousDentalTreatments: request.PreviousDentalTreatments,
		GumDiseaseHistory:        request.GumDiseaseHistory,
		DentalVisitFrequency:     request.DentalVisitFrequency,
		OralHygieneHabits:        request.OralHygieneHabits,
		DentalTraumaHistory:      request.DentalTraumaHistory,
		SmokingTobaccoUse:        request.SmokingTobaccoUse,
		AlcoholConsumption:       request.AlcoholConsumption,
		DietHabits:               request.DietHabits,
		InsuranceProvider:        request.InsuranceProvider,
		InsurancePolicyNumber:    request.InsurancePolicyNumber,
		ConsentForms:             request.ConsentForms,
	}

	return uc.BiodataRepository.Insert(ctx, biodata)
}

func (uc *patientUsecase) GetBiodata(ctx context.Context, patientID int) (*models.PatientBiodata, error) {
	biodata, err := uc.BiodataRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if biodata == nil {
		return nil, exceptions.ErrBiodataNotFound(sql.ErrNoRows)
	}
	return biodata, nil
}

func (uc *patientUsecase) UpdateBiodata(ctx context.Context, patientID int, request *requests.UpdateBiodata) (*models.PatientBiodata, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdateBiodata called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)

	existing, err := uc.BiodataRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrBiodataNotFound(sql.ErrNoRows)
	}

	if request.FirstName != nil {
		existing.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		existing.LastName = *request.LastName
	}
	if request.DateOfBirth != nil {
		dateOfBirth, err := utils.ParseOptionalTimestamp(request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		existing.DateOfBirth = dateOfBirth
	}
	applyOptional(&existing.Gender, request.Gender)
	applyOptional(&existing.Phone, request.Phone)
	applyOptional(&existing.Email, request.Email)
	applyOptional(&existing.Address, request.Address)
	applyOptional(&existing.Occupation, request.Occupation)
	applyOptional(&existing.EmergencyContactName, request.EmergencyContactName)
	applyOptional(&existing.EmergencyContactPhone, request.EmergencyContactPhone)
	applyOptional(&existing.MedicalHistory, request.MedicalHistory)
	applyOptional(&existing.Allergies, request.Allergies)
	applyOptional(&existing.Medications, request.Medications)
	applyOptional(&existing.PreviousSurgeries, request.PreviousSurgeries)
	applyOptional(&existing.FamilyMedicalHistory, request.FamilyMedicalHistory)
	applyOptional(&existing.PreviousDentalTreatments, request.PreviousDentalTreatments)
	applyOptional(&existing.GumDiseaseHistory, request.GumDiseaseHistory)
	applyOptional(&existing.DentalVisitFrequency, request.DentalVisitFrequency)
	applyOptional(&existing.OralHygieneHabits, request.OralHygieneHabits)
	applyOptional(&existing.DentalTraumaHistory, request.DentalTraumaHistory)
	applyOptional(&existing.SmokingTobaccoUse, request.SmokingTobaccoUse)
	applyOptional(&existing.AlcoholConsumption, request.AlcoholConsumption)
	applyOptional(&existing.DietHabits, request.DietHabits)
	applyOptional(&existing.InsuranceProvider, request.InsuranceProvider)
	applyOptional(&existing.InsurancePolicyNumber, request.InsurancePolicyNumber)
	applyOptional(&existing.ConsentForms, request.ConsentForms)

	return uc.BiodataRepository.Update(ctx, existing)
}

func (uc *patientUsecase) ListVisits(ctx context.Context, patientID int) ([]models.Visit, error) {
	return uc.VisitRepository.FindByPatientID(ctx, patientID)
}

func (uc *patientUsecase) GetVisit(ctx context.Context, visitID int) (*models.Visit, error) {
	visit, err := uc.VisitRepository.FindByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrVisitNotFound(fmt.Errorf("visit %d not found", visitID))
	}
	return visit, nil
}

func (uc *patientUsecase) CreateVisit(ctx context.Context, request *requests.CreateVisit) (*models.Visit, error) {
	visitDate, err := utils.ParseOptionalTimestamp(request.VisitDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	nextAppointment, err := utils.ParseOptionalTimestamp(request.NextAppointment)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	visit := &models.Visit{
		PatientID:          request.PatientID,
		VisitType:          request.VisitType,
		ChiefComplaint:     request.ChiefComplaint,
		ExaminationNotes:   request.ExaminationNotes,
		Diagnosis:          request.Diagnosis,
		TreatmentPlan:      request.TreatmentPlan,
		TreatmentPerformed: request.TreatmentPerformed,
		NextAppointment:    nextAppointment,
	}
	if visitDate != nil {
		visit.VisitDate = *visitDate
	} else {
		visit.VisitDate = time.Now().UTC()
	}

	return uc.VisitRepository.Insert(ctx, visit)
}

func (uc *patientUsecase) UpdateVisit(ctx context.Context, visitID int, request *requests.UpdateVisit) (*models.Visit, error) {
	existing, err := uc.VisitRepository.FindByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrVisitNotFound(fmt.Errorf("visit %d not found", visitID))
	}

	if request.VisitDate != nil {
		visitDate, err := utils.ParseOptionalTimestamp(request.VisitDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		if visitDate != nil {
			existing.VisitDate = *visitDate
		}
	}
	if request.NextAppointment != nil {
		nextAppointment, err := utils.ParseOptionalTimestamp(request.NextAppointment)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		existing.NextAppointment = nextAppointment
	}
	applyOptional(&existing.VisitType, request.VisitType)
	applyOptional(&existing.ChiefComplaint, request.ChiefComplaint)
	applyOptional(&existing.ExaminationNotes, request.ExaminationNotes)
	applyOptional(&existing.Diagnosis, request.Diagnosis)
	applyOptional(&existing.TreatmentPlan, request.TreatmentPlan)
	applyOptional(&existing.TreatmentPerformed, request.TreatmentPerformed)

	return uc.VisitRepository.Update(ctx, existing)
}

func (uc *patientUsecase) DeleteVisit(ctx context.Context, visitID int) error {
	return uc.VisitRepository.Delete(ctx, visitID)
}

func (uc *patientUsecase) ListPlanners(ctx context.Context, patientID int) ([]models.RecordPlanner, error) {
	return uc.PlannerRepository.FindByPatientID(ctx, patientID)
}

func (uc *patientUsecase) CreatePlanner(ctx context.Context, request *requests.CreateRecordPlanner) (*models.RecordPlanner, error) {
	plannedDate, err := utils.ParseOptionalTimestamp(request.PlannedDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	status := request.Status
	if status == "" {
		status = constvars.PlannerStatusPlanned
	}

	planner := &models.RecordPlanner{
		PatientID:   request.PatientID,
		Title:       request.Title,
		Description: request.Description,
		PlannedDate: plannedDate,
		Status:      status,
		Priority:    request.Priority,
	}

	return uc.PlannerRepository.Insert(ctx, planner)
}

func (uc *patientUsecase) UpdatePlanner(ctx context.Context, plannerID int, request *requests.UpdateRecordPlanner) (*models.RecordPlanner, error) {
	existing, err := uc.PlannerRepository.FindByID(ctx, plannerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrPlannerNotFound(fmt.Errorf("planner %d not found", plannerID))
	}

	if request.Title != nil {
		existing.Title = *request.Title
	}
	if request.PlannedDate != nil {
		plannedDate, err := utils.ParseOptionalTimestamp(request.PlannedDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		existing.PlannedDate = plannedDate
	}
	if request.CompletedDate != nil {
		completedDate, err := utils.ParseOptionalTimestamp(request.CompletedDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		existing.CompletedDate = completedDate
	}
	if request.Status != nil {
		existing.Status = *request.Status
		if existing.Status == constvars.PlannerStatusCompleted && existing.CompletedDate == nil {
			now := time.Now().UTC()
			existing.CompletedDate = &now
		}
	}
	applyOptional(&existing.Description, request.Description)
	applyOptional(&existing.Priority, request.Priority)

	return uc.PlannerRepository.Update(ctx, existing)
}

func (uc *patientUsecase) DeletePlanner(ctx context.Context, plannerID int) error {
	return uc.PlannerRepository.Delete(ctx, plannerID)
}

func applyOptional(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}
