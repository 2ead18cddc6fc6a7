package models

import "time"

type TrailStep struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// LearningTrail is a curated sequence of learning content.
type LearningTrail struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Steps       []TrailStep `json:"steps,omitempty"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
