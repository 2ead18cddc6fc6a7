package models

import "time"

const (
	SavedItemTypeCopy  = "copy"
	SavedItemTypeImage = "image"
	SavedItemTypeIdea  = "idea"
)

// SavedItem is a generated result a user kept in their personal library.
type SavedItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	Prompt      string    `json:"prompt,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
