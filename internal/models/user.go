package models

import "time"

type Permissions struct {
	CanPublish      bool `json:"can_publish"`
	CanManageTrails bool `json:"can_manage_trails"`
	CanManageUsers  bool `json:"can_manage_users"`
}

type UserSocials struct {
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type User struct {
	ID          string      `json:"id"`
	GoogleID    string      `json:"google_id,omitempty"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Role        string      `json:"role,omitempty"`
	Avatar      string      `json:"avatar,omitempty"`
	IsActive    bool        `json:"is_active"`
	Permissions Permissions `json:"permissions"`
	Socials     UserSocials `json:"socials"`
	CreatedAt   time.Time   `json:"created_at"`
}
