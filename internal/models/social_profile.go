package models

import "time"

// FacebookConfig carries the page selection required for auto publishing.
// AccessToken is stored encrypted at rest.
type FacebookConfig struct {
	SelectedPageID   string    `json:"selected_page_id"`
	SelectedPageName string    `json:"selected_page_name"`
	AccessToken      string    `json:"-"`
	TokenExpiresAt   time.Time `json:"token_expires_at,omitempty"`
}

type WordpressConfig struct {
	SiteURL string `json:"site_url"`
}

// SocialProfile is one platform integration. Exactly one of the config
// variants is set, matching Platform.
type SocialProfile struct {
	ID          string           `json:"id"`
	Platform    string           `json:"platform"`
	IsConnected bool             `json:"is_connected"`
	Facebook    *FacebookConfig  `json:"facebook,omitempty"`
	Wordpress   *WordpressConfig `json:"wordpress,omitempty"`
}
