package models

import "time"

// Session is the redis payload keyed by the session id handed to the client.
type Session struct {
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
