package transfer

// SyncResult summarizes one completed sync cycle.
type SyncResult struct {
	ArticleID string `json:"article_id"`
	PostID    string `json:"post_id"`
	PageName  string `json:"page_name"`
}

type PostCreation struct {
	Platform      string `json:"platform"`
	Content       string `json:"content"`
	ImageURL      string `json:"image_url"`
	ScheduledTime string `json:"scheduling_time"`
	ArticleID     string `json:"article_id"`
}

type PostUpdate struct {
	ID            string `json:"id"`
	Content       string `json:"content"`
	ScheduledTime string `json:"scheduling_time"`
	Status        string `json:"status"`
}

type CopySelection struct {
	CopyID string `json:"copy_id"`
}

type ImageSelection struct {
	ImageID string `json:"image_id"`
}

type ConnectionToggle struct {
	ProfileID string `json:"profile_id"`
}

type FacebookConfigUpdate struct {
	ProfileID        string `json:"profile_id"`
	SelectedPageID   string `json:"selected_page_id"`
	SelectedPageName string `json:"selected_page_name"`
	AccessToken      string `json:"access_token"`
}

type WordpressConfigUpdate struct {
	ProfileID string `json:"profile_id"`
	SiteURL   string `json:"site_url"`
}

type PermissionUpdate struct {
	UserID     string `json:"user_id"`
	Permission string `json:"permission"`
}

type StatusToggle struct {
	UserID string `json:"user_id"`
}

type ProfileUpdate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

type TrailUpsert struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Steps       []TrailStep `json:"steps"`
}

type TrailStep struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type SavedItemCreation struct {
	Type        string `json:"type"`
	Content     string `json:"content"`
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
}
