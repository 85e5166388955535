package patients

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/dto/requests"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	PatientUsecase PatientUsecase
	Log            *zap.Logger
}

func NewPatientController(patientUsecase PatientUsecase, logger *zap.Logger) *PatientController {
	return &PatientController{
		PatientUsecase: patientUsecase,
		Log:            logger,
	}
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePatient)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.CreatePatient(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, response)
}

func (ctrl *PatientController) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIntParam(r, "patientId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) ListPatientsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIntParam(r, "userId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.ListPatientsByUser(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIntParam(r, "patientId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.PatientUsecase.DeletePatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildNoContentResponse(w)
}

func (ctrl *PatientController) CreateBiodata(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBiodata)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.CreateBiodata(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, response)
}

func (ctrl *PatientController) GetBiodata(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIntParam(r, "patientId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetBiodata(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) UpdateBiodata(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIntParam(r, "patientId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateBiodata)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.UpdateBiodata(ctx, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) ListVisits(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIntParam(r, "patientId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.ListVisits(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) GetVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := parseIntParam(r, "visitId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetVisit(ctx, visitID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) CreateVisit(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateVisit)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.CreateVisit(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, response)
}

func (ctrl *PatientController) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := parseIntParam(r, "visitId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateVisit)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.UpdateVisit(ctx, visitID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := parseIntParam(r, "visitId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.PatientUsecase.DeleteVisit(ctx, visitID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildNoContentResponse(w)
}

func (ctrl *PatientController) ListPlanners(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIntParam(r, "patientId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.ListPlanners(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) CreatePlanner(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateRecordPlanner)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.CreatePlanner(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, response)
}

func (ctrl *PatientController) UpdatePlanner(w http.ResponseWriter, r *http.Request) {
	plannerID, err := parseIntParam(r, "plannerId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateRecordPlanner)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.UpdatePlanner(ctx, plannerID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *PatientController) DeletePlanner(w http.ResponseWriter, r *http.Request) {
	plannerID, err := parseIntParam(r, "plannerId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.PatientUsecase.DeletePlanner(ctx, plannerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildNoContentResponse(w)
}

func parseIntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamValidation(err, name)
	}
	return value, nil
}
