package imaging

import (
	"context"
	"database/sql"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type imagingPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewImagingPostgresRepository(db *sql.DB, logger *zap.Logger) ImagingRepository {
	return &imagingPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *imagingPostgresRepository) FindPicturesByPatientID(ctx context.Context, patientID int) ([]models.IntraoralPicture, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetIntraoralPicturesByPatientID, patientID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	pictures := []models.IntraoralPicture{}
	for rows.Next() {
		var p models.IntraoralPicture
		err := rows.Scan(&p.ID, &p.PatientID, &p.ImageURL, &p.ImagePath, &p.Description,
			&p.PictureType, &p.TakenDate, &p.CreatedAt)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateRows(err)
		}
		pictures = append(pictures, p)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateRows(err)
	}
	return pictures, nil
}

func (r *imagingPostgresRepository) FindPictureByID(ctx context.Context, pictureID int) (*models.IntraoralPicture, error) {
	var p models.IntraoralPicture
	err := r.DB.QueryRowContext(ctx, queries.GetIntraoralPictureByID, pictureID).
		Scan(&p.ID, &p.PatientID, &p.ImageURL, &p.ImagePath, &p.Description,
			&p.PictureType, &p.TakenDate, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &p, nil
}

func (r *imagingPostgresRepository) InsertPicture(ctx context.Context, picture *models.IntraoralPicture) (*models.IntraoralPicture, error) {
	var created models.IntraoralPicture
	err := r.DB.QueryRowContext(ctx, queries.InsertIntraoralPicture,
		picture.PatientID, picture.ImageURL, picture.ImagePath, picture.Description, picture.PictureType,
	).Scan(&created.ID, &created.PatientID, &created.ImageURL, &created.ImagePath,
		&created.Description, &created.PictureType, &created.TakenDate, &created.CreatedAt)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return &created, nil
}

func (r *imagingPostgresRepository) DeletePicture(ctx context.Context, pictureID int) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteIntraoralPicture, pictureID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrPictureNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *imagingPostgresRepository) FindXRaysByPatientID(ctx context.Context, patientID int) ([]models.XRay, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetXRaysByPatientID, patientID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	xrays := []models.XRay{}
	for rows.Next() {
		var x models.XRay
		err := rows.Scan(&x.ID, &x.PatientID, &x.ImageURL, &x.ImagePath, &x.XRayType,
			&x.Description, &x.TakenDate, &x.CreatedAt)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateRows(err)
		}
		xrays = append(xrays, x)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateRows(err)
	}
	return xrays, nil
}

func (r *imagingPostgresRepository) FindXRayByID(ctx context.Context, xrayID int) (*models.XRay, error) {
	var x models.XRay
	err := r.DB.QueryRowContext(ctx, queries.GetXRayByID, xrayID).
		Scan(&x.ID, &x.PatientID, &x.ImageURL, &x.ImagePath, &x.XRayType,
			&x.Description, &x.TakenDate, &x.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &x, nil
}

func (r *imagingPostgresRepository) InsertXRay(ctx context.Context, xray *models.XRay) (*models.XRay, error) {
	var created models.XRay
	err := r.DB.QueryRowContext(ctx, queries.InsertXRay,
		xray.PatientID, xray.ImageURL, xray.ImagePath, xray.XRayType, xray.Description,
	).Scan(&created.ID, &created.PatientID, &created.ImageURL, &created.ImagePath,
		&created.XRayType, &created.Description, &created.TakenDate, &created.CreatedAt)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return &created, nil
}

func (r *imagingPostgresRepository) DeleteXRay(ctx context.Context, xrayID int) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteXRay, xrayID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrXRayNotFound(sql.ErrNoRows)
	}
	return nil
}
