package responses

import "dentaldesk-service/internal/app/models"

type Login struct {
	User      models.User `json:"user"`
	SessionID string      `json:"session_id"`
}

type Session struct {
	UserID int `json:"user_id"`
}
