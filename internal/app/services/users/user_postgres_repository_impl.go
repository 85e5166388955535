package users

import (
	"context"
	"database/sql"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type userPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewUserPostgresRepository(db *sql.DB, logger *zap.Logger) UserRepository {
	return &userPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *userPostgresRepository) FindByID(ctx context.Context, userID int) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(ctx, queries.GetUserByID, userID).
		Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.Password, &user.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &user, nil
}

func (r *userPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(ctx, queries.GetUserByEmail, email).
		Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.Password, &user.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &user, nil
}

func (r *userPostgresRepository) Insert(ctx context.Context, user *models.User) (int, error) {
	var userID int
	err := r.DB.QueryRowContext(ctx, queries.InsertUser,
		user.Firstname, user.Lastname, user.Email, user.Password, user.Role,
	).Scan(&userID)
	if err != nil {
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}
	return userID, nil
}

func (r *userPostgresRepository) Delete(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, queries.DeleteUser, userID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}
