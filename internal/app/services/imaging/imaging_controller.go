package imaging

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ImagingController struct {
	ImagingUsecase ImagingUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewImagingController(imagingUsecase ImagingUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *ImagingController {
	return &ImagingController{
		ImagingUsecase: imagingUsecase,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (ctrl *ImagingController) UploadPicture(w http.ResponseWriter, r *http.Request) {
	patientID, file, header, description, kind, ok := ctrl.parseUpload(w, r, "picture_type")
	if !ok {
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.ImagingUsecase.UploadPicture(ctx, patientID, header.Filename,
		header.Header.Get(constvars.HeaderContentType), file, header.Size, description, kind)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, response)
}

func (ctrl *ImagingController) ListPictures(w http.ResponseWriter, r *http.Request) {
	patientID, err := ctrl.parseIntParam(r, "patientId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ImagingUsecase.ListPictures(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *ImagingController) DeletePicture(w http.ResponseWriter, r *http.Request) {
	pictureID, err := ctrl.parseIntParam(r, "pictureId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.ImagingUsecase.DeletePicture(ctx, pictureID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildNoContentResponse(w)
}

func (ctrl *ImagingController) UploadXRay(w http.ResponseWriter, r *http.Request) {
	patientID, file, header, description, kind, ok := ctrl.parseUpload(w, r, "xray_type")
	if !ok {
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.ImagingUsecase.UploadXRay(ctx, patientID, header.Filename,
		header.Header.Get(constvars.HeaderContentType), file, header.Size, description, kind)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, response)
}

func (ctrl *ImagingController) ListXRays(w http.ResponseWriter, r *http.Request) {
	patientID, err := ctrl.parseIntParam(r, "patientId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ImagingUsecase.ListXRays(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *ImagingController) DeleteXRay(w http.ResponseWriter, r *http.Request) {
	xrayID, err := ctrl.parseIntParam(r, "xrayId")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.ImagingUsecase.DeleteXRay(ctx, xrayID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildNoContentResponse(w)
}

func (ctrl *ImagingController) parseUpload(w http.ResponseWriter, r *http.Request, typeField string) (int, multipart.File, *multipart.FileHeader, *string, *string, bool) {
	maxSize := ctrl.InternalConfig.App.ImageMaxUploadSizeInMB << 20
	err := r.ParseMultipartForm(maxSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return 0, nil, nil, nil, nil, false
	}

	patientID, err := strconv.Atoi(r.FormValue("patient_id"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "patient_id"))
		return 0, nil, nil, nil, nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return 0, nil, nil, nil, nil, false
	}
	if header.Size > maxSize {
		file.Close()
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(
			fmt.Errorf("file size %d exceeds limit %d", header.Size, maxSize)))
		return 0, nil, nil, nil, nil, false
	}

	description := utils.OptionalString(r.FormValue("description"))
	kind := utils.OptionalString(r.FormValue(typeField))
	return patientID, file, header, description, kind, true
}

func (ctrl *ImagingController) parseIntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamValidation(err, name)
	}
	return value, nil
}
