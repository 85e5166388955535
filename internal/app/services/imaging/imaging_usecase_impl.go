package imaging

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/app/services/shared/storage"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type imagingUsecase struct {
	ImagingRepository ImagingRepository
	Storage           storage.Storage
	InternalConfig    *config.InternalConfig
	DriverConfig      *config.DriverConfig
	Log               *zap.Logger
}

func NewImagingUsecase(
	imagingRepository ImagingRepository,
	minioStorage storage.Storage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) ImagingUsecase {
	return &imagingUsecase{
		ImagingRepository: imagingRepository,
		Storage:           minioStorage,
		InternalConfig:    internalConfig,
		DriverConfig:      driverConfig,
		Log:               logger,
	}
}

func (uc *imagingUsecase) UploadPicture(ctx context.Context, patientID int, fileName, contentType string, file io.Reader, size int64, description, pictureType *string) (*models.IntraoralPicture, error) {
	objectName, imageURL, err := uc.storeObject(ctx, "intraoral", patientID, fileName, contentType, file, size)
	if err != nil {
		return nil, err
	}

	picture := &models.IntraoralPicture{
		PatientID:   patientID,
		ImageURL:    imageURL,
		ImagePath:   &objectName,
		Description: description,
		PictureType: pictureType,
	}
	return uc.ImagingRepository.InsertPicture(ctx, picture)
}

func (uc *imagingUsecase) ListPictures(ctx context.Context, patientID int) ([]models.IntraoralPicture, error) {
	pictures, err := uc.ImagingRepository.FindPicturesByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	for i := range pictures {
		if pictures[i].ImagePath == nil {
			continue
		}
		url, err := uc.presign(ctx, *pictures[i].ImagePath)
		if err != nil {
			// Stored URL stays usable even when presigning is down.
			uc.Log.Error("imagingUsecase.ListPictures error presigning object",
				zap.String(constvars.LoggingBucketKey, uc.DriverConfig.Minio.BucketName),
				zap.Error(err),
			)
			continue
		}
		pictures[i].ImageURL = url
	}
	return pictures, nil
}

func (uc *imagingUsecase) DeletePicture(ctx context.Context, pictureID int) error {
	picture, err := uc.ImagingRepository.FindPictureByID(ctx, pictureID)
	if err != nil {
		return err
	}
	if picture == nil {
		return exceptions.ErrPictureNotFound(fmt.Errorf("picture %d not found", pictureID))
	}

	if picture.ImagePath != nil {
		if err := uc.Storage.RemoveObject(ctx, uc.DriverConfig.Minio.BucketName, *picture.ImagePath); err != nil {
			uc.Log.Error("imagingUsecase.DeletePicture error removing object",
				zap.String(constvars.LoggingBucketKey, uc.DriverConfig.Minio.BucketName),
				zap.Error(err),
			)
		}
	}
	return uc.ImagingRepository.DeletePicture(ctx, pictureID)
}

func (uc *imagingUsecase) UploadXRay(ctx context.Context, patientID int, fileName, contentType string, file io.Reader, size int64, description, xrayType *string) (*models.XRay, error) {
	objectName, imageURL, err := uc.storeObject(ctx, "xray", patientID, fileName, contentType, file, size)
	if err != nil {
		return nil, err
	}

	xray := &models.XRay{
		PatientID:   patientID,
		ImageURL:    imageURL,
		ImagePath:   &objectName,
		XRayType:    xrayType,
		Description: description,
	}
	return uc.ImagingRepository.InsertXRay(ctx, xray)
}

func (uc *imagingUsecase) ListXRays(ctx context.Context, patientID int) ([]models.XRay, error) {
	xrays, err := uc.ImagingRepository.FindXRaysByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	for i := range xrays {
		if xrays[i].ImagePath == nil {
			continue
		}
		url, err := uc.presign(ctx, *xrays[i].ImagePath)
		if err != nil {
			uc.Log.Error("imagingUsecase.ListXRays error presigning object",
				zap.String(constvars.LoggingBucketKey, uc.DriverConfig.Minio.BucketName),
				zap.Error(err),
			)
			continue
		}
		xrays[i].ImageURL = url
	}
	return xrays, nil
}

func (uc *imagingUsecase) DeleteXRay(ctx context.Context, xrayID int) error {
	xray, err := uc.ImagingRepository.FindXRayByID(ctx, xrayID)
	if err != nil {
		return err
	}
	if xray == nil {
		return exceptions.ErrXRayNotFound(fmt.Errorf("xray %d not found", xrayID))
	}

	if xray.ImagePath != nil {
		if err := uc.Storage.RemoveObject(ctx, uc.DriverConfig.Minio.BucketName, *xray.ImagePath); err != nil {
			uc.Log.Error("imagingUsecase.DeleteXRay error removing object",
				zap.String(constvars.LoggingBucketKey, uc.DriverConfig.Minio.BucketName),
				zap.Error(err),
			)
		}
	}
	return uc.ImagingRepository.DeleteXRay(ctx, xrayID)
}

func (uc *imagingUsecase) RemovePatientObjects(ctx context.Context, patientID int) error {
	pictures, err := uc.ImagingRepository.FindPicturesByPatientID(ctx, patientID)
	if err != nil {
		return err
	}
	xrays, err := uc.ImagingRepository.FindXRaysByPatientID(ctx, patientID)
	if err != nil {
		return err
	}

	for _, picture := range pictures {
		if picture.ImagePath == nil {
			continue
		}
		if err := uc.Storage.RemoveObject(ctx, uc.DriverConfig.Minio.BucketName, *picture.ImagePath); err != nil {
			return err
		}
	}
	for _, xray := range xrays {
		if xray.ImagePath == nil {
			continue
		}
		if err := uc.Storage.RemoveObject(ctx, uc.DriverConfig.Minio.BucketName, *xray.ImagePath); err != nil {
			return err
		}
	}
	return nil
}

func (uc *imagingUsecase) storeObject(ctx context.Context, prefix string, patientID int, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	objectName := utils.GenerateObjectName(prefix, patientID, path.Ext(fileName))
	bucketName := uc.DriverConfig.Minio.BucketName

	_, err := uc.Storage.UploadObject(ctx, bucketName, objectName, contentType, file, size)
	if err != nil {
		return "", "", err
	}

	imageURL, err := uc.presign(ctx, objectName)
	if err != nil {
		return "", "", err
	}
	return objectName, imageURL, nil
}

func (uc *imagingUsecase) presign(ctx context.Context, objectName string) (string, error) {
	expiry := time.Duration(uc.InternalConfig.Minio.PresignedURLExpiryInHours) * time.Hour
	return uc.Storage.PresignedGetURL(ctx, uc.DriverConfig.Minio.BucketName, objectName, expiry)
}
