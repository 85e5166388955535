package imaging

import (
	"context"
	"io"

	"dentaldesk-service/internal/app/models"
)

type ImagingRepository interface {
	FindPicturesByPatientID(ctx context.Context, patientID int) ([]models.IntraoralPicture, error)
	FindPictureByID(ctx context.Context, pictureID int) (*models.IntraoralPicture, error)
	InsertPicture(ctx context.Context, picture *models.IntraoralPicture) (*models.IntraoralPicture, error)
	DeletePicture(ctx context.Context, pictureID int) error

	FindXRaysByPatientID(ctx context.Context, patientID int) ([]models.XRay, error)
	FindXRayByID(ctx context.Context, xrayID int) (*models.XRay, error)
	InsertXRay(ctx context.Context, xray *models.XRay) (*models.XRay, error)
	DeleteXRay(ctx context.Context, xrayID int) error
}

type ImagingUsecase interface {
	UploadPicture(ctx context.Context, patientID int, fileName, contentType string, file io.Reader, size int64, description, pictureType *string) (*models.IntraoralPicture, error)
	ListPictures(ctx context.Context, patientID int) ([]models.IntraoralPicture, error)
	DeletePicture(ctx context.Context, pictureID int) error

	UploadXRay(ctx context.Context, patientID int, fileName, contentType string, file io.Reader, size int64, description, xrayType *string) (*models.XRay, error)
	ListXRays(ctx context.Context, patientID int) ([]models.XRay, error)
	DeleteXRay(ctx context.Context, xrayID int) error

	RemovePatientObjects(ctx context.Context, patientID int) error
}
