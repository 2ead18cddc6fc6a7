package models

import "time"

type ScheduledPost struct {
	ID          string    `json:"id"`
	Platform    string    `json:"platform"`
	Content     string    `json:"content"`
	MediaType   string    `json:"media_type,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	// ArticleID points back at the originating article, when there is one.
	// Lookup only, the post does not own the article.
	ArticleID string `json:"article_id,omitempty"`
}

const (
	PostStatusScheduled = "Scheduled"
	PostStatusPublished = "Published"
)

const (
	PlatformFacebook  = "Facebook"
	PlatformWordpress = "Wordpress"
)

const MediaTypeImage = "image"
