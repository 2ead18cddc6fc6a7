package models

import "time"

// Copy is one AI-generated text candidate for a social post.
type Copy struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type ArticleImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Article struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	CreatedAt        time.Time      `json:"created_at"`
	IsGenerating     bool           `json:"is_generating"`
	Copies           []Copy         `json:"copies,omitempty"`
	Images           []ArticleImage `json:"images,omitempty"`
	SelectedCopyID   string         `json:"selected_copy_id,omitempty"`
	SelectedImageID  string         `json:"selected_image_id,omitempty"`
	IsScheduled      bool           `json:"is_scheduled"`
	AutoPostStatus   string         `json:"auto_post_status"`
	AutoPostedAt     time.Time      `json:"auto_posted_at,omitempty"`
	AutoPostPlatform string         `json:"auto_post_platform,omitempty"`
}

const (
	AutoPostStatusPending = "pending"
	AutoPostStatusSuccess = "success"
	AutoPostStatusFailed  = "failed"
)
