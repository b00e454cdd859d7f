package models

import "time"

type Session struct {
	Username        string `json:"username"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

const AdminCredentialsKey = "admin_credentials"

// Setting is the singleton settings document; only the admin credentials row exists today.
type Setting struct {
	Key          string    `gorm:"size:64;primary_key" json:"key"`
	Username     string    `gorm:"size:100;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type AdminCredentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
