package api

import (
	"context"
	"fmt"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/dto/requests"
)

func (c *Client) CreatePatient(ctx context.Context, userID int) (*models.Patient, error) {
	patient := new(models.Patient)
	err := c.do(ctx, constvars.MethodPost, "/patients", &requests.CreatePatient{UserID: userID}, patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *Client) GetPatient(ctx context.Context, patientID int) (*models.Patient, error) {
	patient := new(models.Patient)
	err := c.do(ctx, constvars.MethodGet, fmt.Sprintf("/patients/%d", patientID), nil, patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *Client) ListPatientsByUser(ctx context.Context, userID int) ([]models.Patient, error) {
	patients := []models.Patient{}
	err := c.do(ctx, constvars.MethodGet, fmt.Sprintf("/patients/user/%d", userID), nil, &patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *Client) DeletePatient(ctx context.Context, patientID int) error {
	return c.do(ctx, constvars.MethodDelete, fmt.Sprintf("/patients/%d", patientID), nil, nil)
}

func (c *Client) CreateBiodata(ctx context.Context, request *requests.CreateBiodata) (*models.PatientBiodata, error) {
	biodata := new(models.PatientBiodata)
	err := c.do(ctx, constvars.MethodPost, "/patients/biodata", request, biodata)
	if err != nil {
		return nil, err
	}
	return biodata, nil
}

func (c *Client) GetBiodata(ctx context.Context, patientID int) (*models.PatientBiodata, error) {
	biodata := new(models.PatientBiodata)
	err := c.do(ctx, constvars.MethodGet, fmt.Sprintf("/patients/biodata/%d", patientID), nil, biodata)
	if err != nil {
		return nil, err
	}
	return biodata, nil
}

func (c *Client) UpdateBiodata(ctx context.Context, patientID int, request *requests.UpdateBiodata) (*models.PatientBiodata, error) {
	biodata := new(models.PatientBiodata)
	err := c.do(ctx, constvars.MethodPut, fmt.Sprintf("/patients/biodata/%d", patientID), request, biodata)
	if err != nil {
		return nil, err
	}
	return biodata, nil
}

func (c *Client) ListVisits(ctx context.Context, patientID int) ([]models.Visit, error) {
	visits := []models.Visit{}
	err := c.do(ctx, constvars.MethodGet, fmt.Sprintf("/patients/visits/%d", patientID), nil, &visits)
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (c *Client) ListPlanners(ctx context.Context, patientID int) ([]models.RecordPlanner, error) {
	planners := []models.RecordPlanner{}
	err := c.do(ctx, constvars.MethodGet, fmt.Sprintf("/patients/record-planner/%d", patientID), nil, &planners)
	if err != nil {
		return nil, err
	}
	return planners, nil
}
