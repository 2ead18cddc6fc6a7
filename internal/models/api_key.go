package models

import "time"

type ApiKey struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ApiKey    string    `json:"api_key"`
	CreatedAt time.Time `json:"created_at"`
}
